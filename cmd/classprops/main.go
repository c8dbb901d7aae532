// Command classprops appends fields to matching JavaScript class
// declarations.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // build metadata

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
		}
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.SugaredLogger
}

func newRootCmd(settingsDirs ...string) *cobra.Command {
	if len(settingsDirs) == 0 {
		settingsDirs = []string{"."}
	}
	a := &app{
		v:   newViper(settingsDirs...),
		log: zap.NewNop().Sugar(),
	}

	root := &cobra.Command{
		Use:   "classprops",
		Short: "Inject fields into JavaScript class declarations",
		Long: `classprops appends static and instance fields to the class declarations
selected by an options file, and prints the rewritten program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(keyConfig, "c", "", "plugin options file (.yaml, .yml, .json or .toml)")
	flags.BoolP(keyVerbose, "v", false, "log at debug level")
	flags.String(keyLogFormat, formatConsole, "log encoding (console or json)")

	root.AddCommand(a.transformCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(versionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	if err := readSettings(a.v); err != nil {
		return err
	}
	log, err := newLogger(a.v.GetString(keyLogFormat), a.v.GetBool(keyVerbose), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debugw("settings loaded",
		"file", a.v.ConfigFileUsed(),
		"config", a.v.GetString(keyConfig),
		"log_format", a.v.GetString(keyLogFormat))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "classprops %s\n", version)
		},
	}
}
