// Package config loads propctl settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview/printer"
	"github.com/rs/zerolog"
)

// FileName is looked up in the home directory when no path is given.
const FileName = ".propctl.toml"

const (
	DefaultMaxInputBytes = 64 << 20
	DefaultLogLevel      = "info"

	// MaxInputLimit bounds max_input_bytes; property values are far smaller.
	MaxInputLimit = 1 << 40
)

// Config holds the CLI settings. Command-line flags override it.
type Config struct {
	Format        printer.Format
	Decimal       bool
	Indent        int
	MaxValueBytes int
	MaxInputBytes int64
	ShowOffsets   bool
	LogLevel      string
}

type fileConfig struct {
	Format        string `toml:"format"`
	Decimal       bool   `toml:"decimal"`
	Indent        int    `toml:"indent"`
	MaxValueBytes int    `toml:"max_value_bytes"`
	MaxInputBytes int64  `toml:"max_input_bytes"`
	ShowOffsets   bool   `toml:"show_offsets"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	opts := printer.DefaultOptions()
	return Config{
		Format:        opts.Format,
		Indent:        opts.IndentSize,
		MaxValueBytes: opts.MaxValueBytes,
		MaxInputBytes: DefaultMaxInputBytes,
		ShowOffsets:   opts.ShowOffsets,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads path on top of Default. Keys the file does not set keep their
// default; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("format") {
		cfg.Format = printer.Format(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("decimal") {
		cfg.Decimal = raw.Decimal
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if meta.IsDefined("max_value_bytes") {
		cfg.MaxValueBytes = raw.MaxValueBytes
	}
	if meta.IsDefined("max_input_bytes") {
		cfg.MaxInputBytes = raw.MaxInputBytes
	}
	if meta.IsDefined("show_offsets") {
		cfg.ShowOffsets = raw.ShowOffsets
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicit when set, which must then exist. Otherwise it
// loads $HOME/.propctl.toml if present and falls back to Default. The
// returned path is empty when no file was read.
func Resolve(explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), "", nil
	}
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate rejects settings the printer or logger cannot use.
func (c Config) Validate() error {
	if _, err := printer.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must be >= 0, got %d", c.Indent)
	}
	if c.MaxValueBytes < 0 {
		return fmt.Errorf("max_value_bytes must be >= 0, got %d", c.MaxValueBytes)
	}
	if c.MaxInputBytes <= 0 || c.MaxInputBytes > MaxInputLimit {
		return fmt.Errorf("max_input_bytes must be in (0, %d], got %d", int64(MaxInputLimit), c.MaxInputBytes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Empty means info.
func (c Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// PrinterOptions maps the settings onto printer options.
func (c Config) PrinterOptions() printer.Options {
	opts := printer.DefaultOptions()
	opts.Format, _ = printer.ParseFormat(string(c.Format))
	opts.IndentSize = c.Indent
	opts.MaxValueBytes = c.MaxValueBytes
	opts.ShowOffsets = c.ShowOffsets
	if c.Decimal {
		opts.Display = types.DisplayDecimal
	}
	return opts
}
