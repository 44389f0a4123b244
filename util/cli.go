package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/extract"
	"github.com/kovetskiy/jax/finder"
	"github.com/kovetskiy/jax/markdown"
	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
	"github.com/kovetskiy/lorg"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func RunResolve(ctx context.Context, cmd *cli.Command) error {
	if err := initialize(cmd); err != nil {
		return err
	}

	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}

	output, err := marshalOutput(cmd.String("output"), cfg)
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimSuffix(output, "\n"))
	return nil
}

// finding is the per-file outcome of an extract run.
type finding struct {
	File    string         `json:"file" yaml:"file"`
	Engine  string         `json:"engine,omitempty" yaml:"engine,omitempty"`
	Version string         `json:"version,omitempty" yaml:"version,omitempty"`
	Sources []string       `json:"sources,omitempty" yaml:"sources,omitempty"`
	Config  map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

func RunExtract(ctx context.Context, cmd *cli.Command) error {
	if err := initialize(cmd); err != nil {
		return err
	}

	files, err := expandGlobs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	handler := NewErrorHandler(cmd.Bool("continue-on-error"))

	var findings []finding
	for _, file := range files {
		log.Debugf(nil, "extracting configuration from %s", file)

		reader, err := os.Open(file)
		if err != nil {
			handler.Handle(err, "unable to open file %q", file)
			continue
		}

		extraction, err := extract.FromHTML(reader)
		reader.Close()
		if err != nil {
			handler.Handle(err, "unable to extract configuration from %q", file)
			continue
		}

		if !extraction.Found() {
			log.Infof(nil, "no typesetting configuration found in %s", file)
			continue
		}

		findings = append(findings, finding{
			File:    file,
			Engine:  string(extraction.Engine),
			Version: extraction.Version,
			Sources: extraction.Sources,
			Config:  extraction.Overrides,
		})
	}

	handler.Summarize()

	if len(findings) == 0 {
		return nil
	}

	output, err := marshalOutput(cmd.String("output"), findings)
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimSuffix(output, "\n"))
	return nil
}

func RunFind(ctx context.Context, cmd *cli.Command) error {
	if err := initialize(cmd); err != nil {
		return err
	}

	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}

	find := finder.New(cfg)

	files, err := expandGlobs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	handler := NewErrorHandler(cmd.Bool("continue-on-error"))

	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".html", ".htm":
			reader, err := os.Open(file)
			if err != nil {
				handler.Handle(err, "unable to open file %q", file)
				continue
			}

			found, err := find.FindHTML(reader)
			reader.Close()
			if err != nil {
				handler.Handle(err, "unable to scan %q", file)
				continue
			}

			for _, node := range found {
				for _, item := range node.Items {
					printItem(file, item)
				}
			}

		default:
			text, err := os.ReadFile(file)
			if err != nil {
				handler.Handle(err, "unable to read file %q", file)
				continue
			}

			for _, item := range find.FindString(string(text)) {
				printItem(file, item)
			}
		}
	}

	handler.Summarize()
	return nil
}

func printItem(file string, item types.MathItem) {
	fmt.Printf("%s:%d-%d %s %s\n", file, item.Start, item.End, item.Mode, item.Equation)
}

func RunCompare(ctx context.Context, cmd *cli.Command) error {
	if err := initialize(cmd); err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("compare takes exactly two configuration files, got %d", len(args))
	}

	left, err := loadValues(args[0])
	if err != nil {
		return err
	}

	right, err := loadValues(args[1])
	if err != nil {
		return err
	}

	diffs := config.CompareMaps(
		config.Merge(left, nil),
		config.Merge(right, nil),
		cmd.StringSlice("ignore"),
	)
	if len(diffs) == 0 {
		log.Infof(nil, "%s and %s are equivalent", args[0], args[1])
		return nil
	}

	for _, diff := range diffs {
		fmt.Println(diff)
	}

	return fmt.Errorf("configurations differ")
}

func RunRender(ctx context.Context, cmd *cli.Command) error {
	if err := initialize(cmd); err != nil {
		return err
	}

	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}

	files, err := expandGlobs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	handler := NewErrorHandler(cmd.Bool("continue-on-error"))

	for _, file := range files {
		log.Infof(nil, "rendering %s", file)

		source, err := os.ReadFile(file)
		if err != nil {
			handler.Handle(err, "unable to read file %q", file)
			continue
		}

		source = bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))

		html, err := markdown.Compile(source, cfg, cmd.StringSlice("features")...)
		if err != nil {
			handler.Handle(err, "unable to render %q", file)
			continue
		}

		if cmd.Bool("save") {
			htmlname := strings.TrimSuffix(file, filepath.Ext(file)) + ".html"
			err := os.WriteFile(htmlname, []byte(html), 0o644)
			if err != nil {
				handler.Handle(err, "unable to write %q", htmlname)
				continue
			}
			log.Infof(nil, "rendered %s to %s", file, htmlname)
		} else {
			fmt.Println(html)
		}
	}

	handler.Summarize()
	return nil
}

func initialize(cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	return nil
}

func resolveConfiguration(cmd *cli.Command) (*config.Configuration, error) {
	version, err := schema.ParseVersion(cmd.String("schema"))
	if err != nil {
		return nil, err
	}

	var overrides map[string]any
	if path := cmd.String("overrides"); path != "" {
		overrides, err = loadValues(path)
		if err != nil {
			return nil, err
		}
	}

	return config.Resolve(version, overrides)
}

// loadValues reads a configuration mapping from disk. A YAML decoder
// reads JSON documents as well.
func loadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, karma.Format(err, "unable to read configuration file %q", path)
	}

	values := map[string]any{}
	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, karma.Format(err, "unable to decode configuration file %q", path)
	}

	return values, nil
}

func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matched, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, karma.Format(err, "unable to expand pattern %q", pattern)
		}
		files = append(files, matched...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched")
	}

	return files, nil
}

func marshalOutput(format string, value any) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", karma.Format(err, "unable to encode output")
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", karma.Format(err, "unable to encode output")
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(fp, "jax.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	switch strings.ToUpper(logLevel) {
	case lorg.LevelTrace.String():
		log.SetLevel(lorg.LevelTrace)
	case lorg.LevelDebug.String():
		log.SetLevel(lorg.LevelDebug)
	case lorg.LevelInfo.String():
		log.SetLevel(lorg.LevelInfo)
	case lorg.LevelWarning.String():
		log.SetLevel(lorg.LevelWarning)
	case lorg.LevelError.String():
		log.SetLevel(lorg.LevelError)
	case lorg.LevelFatal.String():
		log.SetLevel(lorg.LevelFatal)
	default:
		return fmt.Errorf("unknown log level: %s", logLevel)
	}
	log.GetLevel()

	return nil
}
