// Package config loads settings for the numeronym command.
//
// Settings come from, in increasing priority: built-in defaults, a TOML
// file, NUMERONYM_* environment variables, and command-line flags (applied
// by the caller).
//
// Example config.toml:
//
//	format = "json"
//	log_level = "debug"
//	log_json = true
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/numeronym/render"
)

// Environment variables that override file settings.
const (
	EnvFormat   = "NUMERONYM_FORMAT"
	EnvLogLevel = "NUMERONYM_LOG_LEVEL"
	EnvLogJSON  = "NUMERONYM_LOG_JSON"
)

// Config holds settings for the numeronym command.
type Config struct {
	// Format is the output format: "text", "json", or "yaml".
	Format render.Format `toml:"format" json:"format" yaml:"format"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level" json:"log_level" yaml:"log_level"`

	// LogJSON switches diagnostics on stderr to JSON.
	LogJSON bool `toml:"log_json" json:"log_json" yaml:"log_json"`

	// Follow keeps reading the input file as it grows.
	Follow bool `toml:"follow" json:"follow" yaml:"follow"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:   render.FormatText,
		LogLevel: "info",
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "numeronym", "config.toml"), nil
}

// Load builds a Config from defaults, the TOML file at path, and the
// environment, then validates it. An empty path means DefaultPath, which
// may be absent. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Read is Load without validation. Callers that layer more settings on
// top, such as command-line flags, call Validate once they are applied.
func Read(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		err := LoadTOML(cfg, path)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// LoadTOML decodes the TOML file at path into cfg.
// Keys the file does not set keep their current values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("decode config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnvOverrides applies NUMERONYM_* environment variables.
//
//   - NUMERONYM_FORMAT: overrides format
//   - NUMERONYM_LOG_LEVEL: overrides log_level
//   - NUMERONYM_LOG_JSON: "1" or "true" enables JSON logs
func (c *Config) ApplyEnvOverrides() {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = render.Format(format)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if logJSON := os.Getenv(EnvLogJSON); logJSON != "" {
		c.LogJSON = logJSON == "1" || strings.EqualFold(logJSON, "true")
	}
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks every setting and normalizes Format and LogLevel.
// Returns ValidationErrors listing all problems.
func (c *Config) Validate() error {
	var errs ValidationErrors

	format, err := render.ParseFormat(string(c.Format))
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("invalid format %q, must be one of: text, json, yaml", c.Format),
		})
	} else {
		c.Format = format
	}

	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, ok := logLevels[level]; !ok {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("invalid level %q, must be one of: debug, info, warn, error", c.LogLevel),
		})
	} else {
		c.LogLevel = level
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(strings.TrimSpace(c.LogLevel))]; ok {
		return level
	}
	return slog.LevelInfo
}

// NewLogger builds a logger writing to w at the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
