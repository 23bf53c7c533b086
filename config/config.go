// ABOUTME: Startup configuration loaded from an optional YAML file and PXREM_* environment variables.
// ABOUTME: Validation restricts the web listen address to loopback hosts.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidBase       = errors.New("base_size must be a positive number")
	ErrInvalidCopyWindow = errors.New("copy_window must be positive")
	ErrNonLoopbackAddr   = errors.New("addr must be a loopback address")
)

// DefaultAddr is where the web UI listens unless configured otherwise.
const DefaultAddr = "127.0.0.1:2389"

// Config holds startup defaults. Nothing here is written back at runtime;
// edits made in a session stay in that session.
type Config struct {
	BaseSize   float64       `yaml:"base_size"`
	Addr       string        `yaml:"addr"`
	Clipboard  string        `yaml:"clipboard"`
	CopyWindow time.Duration `yaml:"copy_window"`
	Log        LogConfig     `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseSize:   convert.DefaultBaseSize,
		Addr:       DefaultAddr,
		Clipboard:  clipboard.ModeAuto,
		CopyWindow: clipboard.DefaultWindow,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pxrem/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "pxrem", "config.yaml")
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read builds a Config from defaults, the YAML file at path, and PXREM_*
// environment variables, in that order. An empty path means DefaultPath; a
// missing file at the default location is not an error, but a missing file
// the caller named explicitly is. The result is not validated, so callers
// can layer further overrides before calling Validate.
func Read(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from PXREM_* variables that are set and non-empty.
func (c *Config) applyEnv() error {
	if v := os.Getenv("PXREM_BASE_SIZE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PXREM_BASE_SIZE=%q: %w", v, ErrInvalidBase)
		}
		c.BaseSize = f
	}
	if v := os.Getenv("PXREM_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("PXREM_CLIPBOARD"); v != "" {
		c.Clipboard = v
	}
	if v := os.Getenv("PXREM_COPY_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PXREM_COPY_WINDOW=%q: %w", v, err)
		}
		c.CopyWindow = d
	}
	if v := os.Getenv("PXREM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PXREM_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if !convert.ValidBase(c.BaseSize) {
		return fmt.Errorf("%w: %v", ErrInvalidBase, c.BaseSize)
	}
	if c.CopyWindow <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCopyWindow, c.CopyWindow)
	}
	if !clipboard.ValidMode(c.Clipboard) {
		return fmt.Errorf("%w: %q", clipboard.ErrUnknownMode, c.Clipboard)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return checkLoopback(c.Addr)
}

// checkLoopback accepts 127.0.0.0/8, ::1 and "localhost" hosts only.
func checkLoopback(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("addr %q: %w", addr, err)
	}
	if host == "localhost" {
		return nil
	}
	ip := net.ParseIP(host)
	if ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNonLoopbackAddr, addr)
}
