// ABOUTME: Builds the program's zap logger from the log section of the configuration.
// ABOUTME: Logs go to the console writer, or to a file when one is configured (the TUI owns the terminal).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned for an unrecognized log level name.
var ErrUnknownLevel = errors.New("unknown log level")

// LevelNone disables logging entirely.
const LevelNone = "none"

// LogConfig selects the log level and an optional destination file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// ParseLevel maps a level name to a zap level. "none" maps to a level above
// fatal so nothing is enabled.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelNone:
		return zapcore.FatalLevel + 1, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info", "normal":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// Build returns a logger writing to console, or to File when set. The
// returned close function flushes the logger and closes the file.
func (lc LogConfig) Build(console io.Writer) (*zap.Logger, func(), error) {
	level, err := ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, err
	}
	if strings.EqualFold(strings.TrimSpace(lc.Level), LevelNone) {
		return zap.NewNop(), func() {}, nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	var (
		sink    zapcore.WriteSyncer
		closeFn = func() {}
	)
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = func() { _ = f.Close() }
	} else {
		sink = zapcore.AddSync(console)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(sink), zap.NewAtomicLevelAt(level))
	logger := zap.New(core)
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}
