package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Setting keys. Each one is also a flag name and, upper-cased with the
// CLASSPROPS_ prefix, an environment variable.
const (
	keyConfig    = "config"
	keyOutput    = "output"
	keyVerbose   = "verbose"
	keyLogFormat = "log-format"
)

// newViper reads tool settings from the environment and from an optional
// .classprops.yaml in one of dirs.
func newViper(dirs ...string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("CLASSPROPS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogFormat, formatConsole)

	v.SetConfigName(".classprops")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	return v
}

// readSettings loads the settings file if there is one.
func readSettings(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return errors.Wrap(err, "read settings")
}
