package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/t14raptor/classprops/generator"
	"github.com/t14raptor/classprops/parser"
	"github.com/t14raptor/classprops/transform/classprops"
)

const stdinName = "-"

func (a *app) transformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Inject class fields into JavaScript files",
		Long: `Parse each file, append the configured fields to the matching class
declarations and print the regenerated program.

Examples:
  classprops transform -c options.yaml app.js         # Rewrite one file
  classprops transform -c options.toml a.js b.js      # Rewrite several files
  cat app.js | classprops transform -c options.yaml - # Read from stdin
  classprops transform -c options.yaml -o out.js app.js`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(cmd, args)
		},
	}

	cmd.Flags().StringP(keyOutput, "o", "", "output file (default: stdout)")

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, files []string) error {
	opts, err := a.transformOptions()
	if err != nil {
		return err
	}
	plugin := classprops.New(opts)

	if len(files) == 0 {
		files = []string{stdinName}
	}

	var out strings.Builder
	for _, name := range files {
		src, err := readSource(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		program, err := parser.ParseFile(string(src))
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		result := plugin.Apply(program)
		a.log.Infow("transformed",
			"file", name,
			"visited", result.Visited,
			"injected", result.Injected)
		out.WriteString(generator.Generate(program))
	}

	return a.writeOutput(cmd.OutOrStdout(), out.String())
}

// transformOptions loads the options file. Without one the program is
// only reprinted.
func (a *app) transformOptions() (*classprops.Options, error) {
	if a.v.GetString(keyConfig) == "" {
		a.log.Warnw("no options file given, classes are left unchanged")
		return nil, nil
	}
	return a.loadOptions()
}

func (a *app) loadOptions() (*classprops.Options, error) {
	path := a.v.GetString(keyConfig)
	if path == "" {
		return nil, errors.WithHint(errors.New("no options file given"),
			"pass --config or set CLASSPROPS_CONFIG")
	}
	opts, err := classprops.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debugw("options loaded",
		"path", path,
		"all", opts.All,
		"classes", opts.Classes,
		"superClasses", opts.SuperClasses,
		"props", len(opts.Props))
	return opts, nil
}

func readSource(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		src, err := io.ReadAll(stdin)
		return src, errors.Wrap(err, "read stdin")
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return src, nil
}

func (a *app) writeOutput(stdout io.Writer, code string) error {
	path := a.v.GetString(keyOutput)
	if path == "" {
		_, err := io.WriteString(stdout, code)
		return errors.Wrap(err, "write output")
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	a.log.Debugw("output written", "path", path, "bytes", len(code))
	return nil
}
