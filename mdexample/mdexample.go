package mdexample

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/clean-yaml/encode"
	"github.com/signadot/clean-yaml/libdiff"
	"github.com/signadot/clean-yaml/parse"
)

var ErrMismatch = errors.New("example is not canonical")

var fenceRE = regexp.MustCompile("(?s)(^|.*?\\n)```yaml(?:[ \\t]+(\\d+)(?:[ \\t]+(\\d+))?)?\\n(.*?)```")

// Example is one yaml block of a markdown document.
type Example struct {
	// Line is the 1-based line of the opening fence.
	Line   int
	Width  int
	Indent int
	Source string
}

func (ex *Example) String() string {
	return fmt.Sprintf("line %d (%d:%d)", ex.Line, ex.Width, ex.Indent)
}

// Extract returns the examples of md in document order.
func Extract(md string) ([]Example, error) {
	var res []Example
	base := 1
	for _, m := range fenceRE.FindAllStringSubmatch(md, -1) {
		ex := Example{
			Line:   base + strings.Count(m[1], "\n"),
			Source: m[4],
		}
		base += strings.Count(m[0], "\n")
		var err error
		if ex.Width, err = fenceInt(m[2], encode.DefaultWidth); err != nil {
			return nil, fmt.Errorf("line %d: width: %w", ex.Line, err)
		}
		if ex.Indent, err = fenceInt(m[3], encode.DefaultIndent); err != nil {
			return nil, fmt.Errorf("line %d: indent: %w", ex.Line, err)
		}
		res = append(res, ex)
	}
	return res, nil
}

// Check parses the example and dumps it back, reporting ErrMismatch with
// a line diff when the result differs from the source.
func (ex *Example) Check() error {
	node, err := parse.Parse([]byte(ex.Source))
	if err != nil {
		return fmt.Errorf("%s: %w", ex, err)
	}
	out, err := encode.Dump(node, encode.Width(ex.Width), encode.Indent(ex.Indent))
	if err != nil {
		return fmt.Errorf("%s: %w", ex, err)
	}
	if out == ex.Source {
		return nil
	}
	buf := &bytes.Buffer{}
	if err := libdiff.Write(buf, "example", ex.Source, out, nil); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s\n%s", ErrMismatch, ex, buf.String())
}

// fenceInt reads a fence parameter. A missing or zero value selects def.
func fenceInt(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return def, nil
	}
	return n, nil
}
