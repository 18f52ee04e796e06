package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/clean-yaml/libdiff"

	"github.com/scott-cotton/cli"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -write requires file arguments", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	in, err := readInput(cc.In, file)
	if err != nil {
		return err
	}
	out, err := cfg.reformat(in, file)
	if err != nil {
		return err
	}
	return cfg.report(cc.Out, file, string(in), out)
}

// report writes the outcome of reformatting one input according to the
// -l, -d and -write flags. With none of them, out is written to w.
func (cfg *FmtConfig) report(w io.Writer, file, in, out string) error {
	changed := in != out
	if cfg.List && changed {
		if _, err := fmt.Fprintln(w, file); err != nil {
			return err
		}
	}
	if cfg.Diff && changed {
		if err := libdiff.Write(w, file, in, out, cfg.colors(w)); err != nil {
			return err
		}
	}
	if cfg.Write && changed {
		fi, err := os.Stat(file)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, []byte(out), fi.Mode().Perm()); err != nil {
			return err
		}
	}
	if cfg.List || cfg.Diff || cfg.Write {
		return nil
	}
	_, err := io.WriteString(w, out)
	return err
}
