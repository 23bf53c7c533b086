// ABOUTME: Tests for log level parsing and logger construction.
// ABOUTME: Verifies console output, file output, and that "none" produces a no-op logger.
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"normal", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, err := ParseLevel("chatty"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestBuildConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := LogConfig{Level: "warn"}.Build(&buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("clipboard write failed")
	closeFn()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry should be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "clipboard write failed") {
		t.Errorf("expected warn entry, got:\n%s", out)
	}
}

func TestBuildFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pxrem.log")
	var console bytes.Buffer
	logger, closeFn, err := LogConfig{Level: "debug", File: path}.Build(&console)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Debug("to file")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected entry in log file, got %q", data)
	}
	if console.Len() != 0 {
		t.Errorf("console should stay empty when a file is configured, got %q", console.String())
	}
}

func TestBuildNoneLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := LogConfig{Level: "none"}.Build(&buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Error("nobody hears this")
	closeFn()
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
