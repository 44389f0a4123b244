package util

import (
	"github.com/urfave/cli/v3"
)

var ResolveCommand = &cli.Command{
	Name:   "resolve",
	Usage:  "resolve a configuration against the schema defaults and print it.",
	Flags:  []cli.Flag{SchemaFlag, OverridesFlag, OutputFlag},
	Action: RunResolve,
}

var ExtractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "extract typesetting configurations from HTML files.",
	ArgsUsage: "GLOB...",
	Flags:     []cli.Flag{OutputFlag},
	Action:    RunExtract,
}

var FindCommand = &cli.Command{
	Name:      "find",
	Usage:     "list the math spans found in text, HTML or markdown files.",
	ArgsUsage: "GLOB...",
	Flags:     []cli.Flag{SchemaFlag, OverridesFlag},
	Action:    RunFind,
}

var CompareCommand = &cli.Command{
	Name:      "compare",
	Usage:     "compare two configuration files and report every divergence.",
	ArgsUsage: "FILE_A FILE_B",
	Flags:     []cli.Flag{IgnoreFlag},
	Action:    RunCompare,
}

var RenderCommand = &cli.Command{
	Name:      "render",
	Usage:     "compile markdown files to HTML with the math extension.",
	ArgsUsage: "GLOB...",
	Flags:     []cli.Flag{SchemaFlag, OverridesFlag, SaveFlag, FeaturesFlag},
	Action:    RunRender,
}
