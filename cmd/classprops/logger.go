package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatConsole = "console"
	formatJSON    = "json"
)

// newLogger writes to w so that stdout stays reserved for generated code.
func newLogger(format string, verbose bool, w io.Writer) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	switch format {
	case formatConsole:
		config := zap.NewDevelopmentEncoderConfig()
		config.TimeKey = ""
		encoder = zapcore.NewConsoleEncoder(config)
	case formatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.WithHintf(errors.Newf("unknown log format %q", format),
			"use %s or %s", formatConsole, formatJSON)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Sugar(), nil
}
