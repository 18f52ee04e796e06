package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/clean-yaml/mdexample"

	"github.com/scott-cotton/cli"
)

func examples(cfg *ExamplesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Examples.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: examples requires markdown files", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		md, err := readInput(cc.In, file)
		if err != nil {
			return err
		}
		n, err := cfg.checkExamples(cc.Out, file, string(md))
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		failed += n
	}
	if failed > 0 {
		fmt.Fprintf(cc.Out, "%d example(s) failed\n", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkExamples runs every example of md, returning the number that
// were not canonical.
func (cfg *ExamplesConfig) checkExamples(w io.Writer, file, md string) (int, error) {
	exs, err := mdexample.Extract(md)
	if err != nil {
		return 0, err
	}
	failed := 0
	for i := range exs {
		ex := &exs[i]
		err := ex.Check()
		switch {
		case err == nil:
			if cfg.Verbose {
				fmt.Fprintf(w, "%s: %s: ok\n", file, ex)
			}
		case errors.Is(err, mdexample.ErrMismatch):
			failed++
			fmt.Fprintf(w, "%s: %v\n", file, err)
		default:
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", file, err)
		}
	}
	return failed, nil
}
