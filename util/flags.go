package util

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

// Flags are attached to the root command and inherited by every
// subcommand.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:  "color",
		Value: "auto",
		Usage: "display logs in color. Possible values: auto, never.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_COLOR"),
			altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "continue-on-error",
		Value:   false,
		Usage:   "don't exit if an error occurs while processing a file, continue processing remaining files.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       ConfigFilePath(),
		Usage:       "use the specified configuration file.",
		TakesFile:   true,
		Sources:     cli.NewValueSourceChain(cli.EnvVar("JAX_CONFIG")),
		Destination: &filename,
	},
}

var SchemaFlag = &cli.StringFlag{
	Name:    "schema",
	Value:   "current",
	Usage:   "resolve against the specified schema generation. Possible values: current, legacy.",
	Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_SCHEMA"), altsrctoml.TOML("schema", altsrc.NewStringPtrSourcer(&filename))),
}

var OverridesFlag = &cli.StringFlag{
	Name:      "overrides",
	Aliases:   []string{"o"},
	Value:     "",
	Usage:     "layer the specified YAML or JSON configuration file over the schema defaults.",
	TakesFile: true,
	Sources:   cli.NewValueSourceChain(cli.EnvVar("JAX_OVERRIDES"), altsrctoml.TOML("overrides", altsrc.NewStringPtrSourcer(&filename))),
}

var OutputFlag = &cli.StringFlag{
	Name:    "output",
	Value:   "yaml",
	Usage:   "print results in the specified format. Possible values: yaml, json.",
	Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_OUTPUT"), altsrctoml.TOML("output", altsrc.NewStringPtrSourcer(&filename))),
}

var IgnoreFlag = &cli.StringSliceFlag{
	Name:    "ignore",
	Usage:   "skip the specified dotted configuration paths when comparing.",
	Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_IGNORE"), altsrctoml.TOML("ignore", altsrc.NewStringPtrSourcer(&filename))),
}

var SaveFlag = &cli.BoolFlag{
	Name:    "save",
	Value:   false,
	Usage:   "write rendered HTML next to each markdown file instead of stdout.",
	Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_SAVE"), altsrctoml.TOML("save", altsrc.NewStringPtrSourcer(&filename))),
}

var FeaturesFlag = &cli.StringSliceFlag{
	Name:    "features",
	Value:   []string{},
	Usage:   "Enables optional features. Current features: mkdocsadmonitions",
	Sources: cli.NewValueSourceChain(cli.EnvVar("JAX_FEATURES"), altsrctoml.TOML("features", altsrc.NewStringPtrSourcer(&filename))),
}
