package libdiff

import (
	"fmt"
	"io"
	"strings"
)

// Write prints the diff turning from into to in unified format with
// DefaultContext lines of context. Nothing is written when the texts are
// equal.
func Write(w io.Writer, name, from, to string, colors *Colors) error {
	if from == to {
		return nil
	}
	if colors == nil {
		colors = &Colors{}
	}
	hunks := Hunks(Lines(from, to), DefaultContext)
	b := &strings.Builder{}
	b.WriteString(colors.paint(colors.Header, "--- a/"+name))
	b.WriteByte('\n')
	b.WriteString(colors.paint(colors.Header, "+++ b/"+name))
	b.WriteByte('\n')
	for _, h := range hunks {
		hd := fmt.Sprintf("@@ -%s +%s @@", span(h.FromStart, h.FromLen), span(h.ToStart, h.ToLen))
		b.WriteString(colors.paint(colors.Hunk, hd))
		b.WriteByte('\n')
		for _, ln := range h.Lines {
			text, nl := strings.CutSuffix(ln.Text, "\n")
			text = ln.Op.String() + text
			switch ln.Op {
			case Delete:
				text = colors.paint(colors.Delete, text)
			case Insert:
				text = colors.paint(colors.Insert, text)
			}
			b.WriteString(text)
			b.WriteByte('\n')
			if !nl {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func span(start, n int) string {
	if n == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, n)
}
