package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
form:
  clear_on_submit: true
logging:
  level: debug
  file: /tmp/contactform.log
output: json
alt_screen: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Form.ClearOnSubmit)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "/tmp/contactform.log", cfg.Logging.File)
	require.Equal(t, OutputJSON, cfg.Output)
	require.True(t, cfg.AltScreen)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form:\n  clear_on_submit: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Form.ClearOnSubmit)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, OutputNone, cfg.Output)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CONTACTFORM_CLEAR_ON_SUBMIT", "true")
	t.Setenv("CONTACTFORM_LOG_LEVEL", "warn")
	t.Setenv("CONTACTFORM_LOG_FILE", "env.log")
	t.Setenv("CONTACTFORM_OUTPUT", "text")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	require.True(t, cfg.Form.ClearOnSubmit)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "env.log", cfg.Logging.File)
	require.Equal(t, OutputText, cfg.Output)
}

func TestApplyEnvBadBool(t *testing.T) {
	t.Setenv("CONTACTFORM_CLEAR_ON_SUBMIT", "sometimes")

	cfg := Default()
	require.Error(t, cfg.ApplyEnv())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONTACTFORM_OUTPUT=json\n"), 0644))
	t.Setenv("CONTACTFORM_OUTPUT", "")
	os.Unsetenv("CONTACTFORM_OUTPUT")

	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "json", os.Getenv("CONTACTFORM_OUTPUT"))

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"json output", func(c *Config) { c.Output = "JSON" }, nil},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, nil},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
		{"bad output", func(c *Config) { c.Output = "xml" }, ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, lvl)
}
