package main

import (
	"context"
	"os"

	"github.com/kovetskiy/jax/util"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	version     = "1.0.0"
	usage       = "A tool for resolving TeX typesetting configurations and the math they apply to."
	description = `Jax resolves MathJax and KaTeX style typesetting configurations against
their schema defaults, extracts them from HTML pages, finds the delimited
math spans they describe in documents, and compiles markdown to HTML with
a delimiter-aware math extension.`
)

func main() {
	cmd := &cli.Command{
		Name:                  "jax",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.Flags,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Commands: []*cli.Command{
			util.ResolveCommand,
			util.ExtractCommand,
			util.FindCommand,
			util.CompareCommand,
			util.RenderCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
