// Package config loads contactform settings from a YAML file, the
// environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the directory under the user config dir holding config.yaml.
	DirName = "contactform"
	// FileName is the default config file name.
	FileName = "config.yaml"

	envPrefix = "CONTACTFORM_"
)

// Output formats for the last submission printed on exit.
const (
	OutputNone = "none"
	OutputText = "text"
	OutputJSON = "json"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidOutput   = errors.New("invalid output format")
)

// Config holds all contactform configuration.
type Config struct {
	// Form behavior
	Form FormConfig `yaml:"form"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Output is the format the last accepted submission is printed in on
	// exit: none, text or json.
	Output string `yaml:"output"`

	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool `yaml:"alt_screen"`
}

// FormConfig configures the contact form.
type FormConfig struct {
	// ClearOnSubmit empties every field after an accepted submission.
	ClearOnSubmit bool `yaml:"clear_on_submit"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards log output
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputNone,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with CONTACTFORM_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "CLEAR_ON_SUBMIT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCLEAR_ON_SUBMIT: %w", envPrefix, err)
		}
		c.Form.ClearOnSubmit = b
	}
	if v, ok := os.LookupEnv(envPrefix + "ALT_SCREEN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sALT_SCREEN: %w", envPrefix, err)
		}
		c.AltScreen = b
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "OUTPUT"); v != "" {
		c.Output = v
	}
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Output) {
	case "", OutputNone, OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	return nil
}

// LogLevel parses the configured level. Empty means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Logging.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return lvl, nil
}
