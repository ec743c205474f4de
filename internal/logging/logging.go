// Package logging builds the zap logger used by the CLI.
//
// Events go to a JSON log file (rotated by lumberjack) and, in console
// format, to stderr. Both sinks share the level selected with --log_level.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelNames lists the accepted --log_level values, most verbose first.
var LevelNames = []string{"off", "debug", "info", "warning", "error", "critical"}

var levels = map[string]zapcore.Level{
	"debug":    zapcore.DebugLevel,
	"info":     zapcore.InfoLevel,
	"warning":  zapcore.WarnLevel,
	"error":    zapcore.ErrorLevel,
	"critical": zapcore.DPanicLevel,
}

// ParseLevel maps a level name to a zap level. off reports true and no level.
func ParseLevel(name string) (zapcore.Level, bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "off" {
		return zapcore.InvalidLevel, true, nil
	}
	lvl, ok := levels[name]
	if !ok {
		return zapcore.InvalidLevel, false, fmt.Errorf("logging level not valid: %q — must be one of: %s", name, strings.Join(LevelNames, ", "))
	}
	return lvl, false, nil
}

// Options configures New.
type Options struct {
	Level   string
	File    string    // empty disables the file sink
	Console io.Writer // nil means os.Stderr
}

// New builds a logger and returns a cleanup func that closes the log file.
func New(opts Options) (*zap.SugaredLogger, func() error, error) {
	lvl, off, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	noop := func() error { return nil }
	if off {
		return zap.NewNop().Sugar(), noop, nil
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeName:   zapcore.FullNameEncoder,
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), lvl),
	}

	cleanup := noop
	if opts.File != "" {
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), lvl))
		cleanup = sink.Close
	}

	z := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(zapcore.AddSync(console)))
	return z.Sugar(), cleanup, nil
}
