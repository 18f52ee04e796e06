package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/clean-yaml/encode"
	"github.com/signadot/clean-yaml/format"
	"github.com/signadot/clean-yaml/libdiff"
	"github.com/signadot/clean-yaml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	W     int  `cli:"name=w aliases=width desc='line width budget'"`
	I     int  `cli:"name=i aliases=indent desc='spaces per nesting level (1-9)'"`
	J     bool `cli:"name=j aliases=json desc='read input as json'"`
	Color bool `cli:"name=color desc='color diffs'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// parseOpts selects the input format: -I, then -j, then the extension of
// path. Stdin defaults to YAML.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.YAMLFormat
	switch {
	case cfg.InFormat != nil:
		fmat = *cfg.InFormat
	case cfg.J:
		fmat = format.JSONFormat
	case path != "-":
		fmat = format.FromPath(path)
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.Width(cfg.W),
		encode.Indent(cfg.I),
	}
}

// colors returns the diff palette for w, or nil when w should get plain
// text.
func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

// reformat parses every document in data and dumps it again, joining
// documents with a "---" line.
func (cfg *MainConfig) reformat(data []byte, path string) (string, error) {
	docs, err := parse.ParseAll(data, cfg.parseOpts(path)...)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	for i, doc := range docs {
		if i > 0 {
			buf.WriteString("---\n")
		}
		if err := encode.Encode(doc, buf, cfg.encOpts()...); err != nil {
			return "", fmt.Errorf("error encoding document %d: %w", i, err)
		}
	}
	return buf.String(), nil
}

type FmtConfig struct {
	*MainConfig

	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff  bool `cli:"name=d desc='print diffs instead of reformatted output'"`
	Write bool `cli:"name=write desc='rewrite files in place'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type ExamplesConfig struct {
	*MainConfig

	Verbose bool `cli:"name=v desc='report passing examples too'"`

	Examples *cli.Command
}
