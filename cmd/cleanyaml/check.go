package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/clean-yaml/encode"
	"github.com/signadot/clean-yaml/ir"
	"github.com/signadot/clean-yaml/libdiff"
	"github.com/signadot/clean-yaml/parse"

	"github.com/scott-cotton/cli"
)

var (
	errNotRoundTrip  = errors.New("dump does not parse back to the same tree")
	errNotIdempotent = errors.New("dump is not stable under re-dumping")
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		in, err := readInput(cc.In, file)
		if err != nil {
			return err
		}
		ok, err := cfg.checkInput(cc.Out, file, in)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		failed = failed || !ok
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInput checks every document of in, reporting to w. It returns
// false if any document failed.
func (cfg *CheckConfig) checkInput(w io.Writer, file string, in []byte) (bool, error) {
	docs, err := parse.ParseAll(in, cfg.parseOpts(file)...)
	if err != nil {
		return false, err
	}
	ok := true
	for i, doc := range docs {
		err := cfg.checkDoc(w, fmt.Sprintf("%s#%d", file, i), doc)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(w, "%s: document %d: ok\n", file, i)
			}
			continue
		}
		if !errors.Is(err, errNotRoundTrip) && !errors.Is(err, errNotIdempotent) {
			return false, fmt.Errorf("document %d: %w", i, err)
		}
		ok = false
		fmt.Fprintf(w, "%s: document %d: %v\n", file, i, err)
	}
	return ok, nil
}

func (cfg *CheckConfig) checkDoc(w io.Writer, name string, doc *ir.Node) error {
	opts := cfg.encOpts()
	first, err := encode.Dump(doc, opts...)
	if err != nil {
		return err
	}
	back, err := parse.Parse([]byte(first))
	if err != nil {
		return fmt.Errorf("%w: %w", errNotRoundTrip, err)
	}
	if !ir.Equal(doc, back) {
		return errNotRoundTrip
	}
	second, err := encode.Dump(back, opts...)
	if err != nil {
		return err
	}
	if first != second {
		return cfg.unstable(w, name, first, second)
	}
	return nil
}

// unstable reports a dump that changed when re-dumped, writing the diff
// between the two to w.
func (cfg *CheckConfig) unstable(w io.Writer, name, first, second string) error {
	if err := libdiff.Write(w, name, first, second, cfg.colors(w)); err != nil {
		return fmt.Errorf("error writing diff: %w", err)
	}
	return errNotIdempotent
}
