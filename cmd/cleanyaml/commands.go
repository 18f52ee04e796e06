package main

import (
	"github.com/signadot/clean-yaml/encode"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{W: encode.DefaultWidth, I: encode.DefaultIndent}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cleanyaml").
		WithSynopsis("cleanyaml [opts] command [opts]").
		WithDescription("cleanyaml writes YAML in a canonical, diff-stable layout.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cleanMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			ExamplesCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-l] [-d] [-write] [files]").
		WithDescription("reformat documents from files or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("check that documents survive a dump round trip and re-dump identically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ExamplesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExamplesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Examples, "examples").
		WithAliases("ex").
		WithSynopsis("examples [-v] [markdown files]").
		WithDescription(examplesDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return examples(cfg, cc, args)
		})
}

const examplesDescription = `examples checks the yaml code blocks of markdown documents.

Each block opened by a fence of the form

  ` + "```yaml [width [indent]]" + `

must already be in canonical form: parsing it and dumping the result with
the given width (default 120) and indent (default 2) must reproduce the
block exactly. Mismatches are reported with a line diff.`
