package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Program, cfg.Program)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, 200, cfg.Completion.MaxEntries)
	assert.True(t, cfg.TUI.ShowHelp)
	assert.Contains(t, cfg.PresetNames(), "quick")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
program: /opt/nmap/bin/nmap
log_level: debug
presets:
  web: "nmap -p 80,443 -sV"
completion:
  max_entries: 0
  show_hidden: true
tui:
  show_help: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/nmap/bin/nmap", cfg.Program)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Completion.ShowHidden)
	assert.Equal(t, 200, cfg.Completion.MaxEntries)
	assert.False(t, cfg.TUI.ShowHelp)

	web, err := cfg.Preset("web")
	require.NoError(t, err)
	assert.Equal(t, "nmap -p 80,443 -sV", web)

	_, err = cfg.Preset("nope")
	assert.Error(t, err)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: [unclosed"), 0644))

	_, err := LoadConfig(viper.New(), path)
	assert.ErrorContains(t, err, "failed to read config")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelWarn, "", &buf)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	require.NoError(t, l.Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "WARN")

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := NewLogger(LevelInfo, path, nil)
	l.Error("disk %s", "full")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"disk full"`)
	assert.Contains(t, string(data), `"level":"error"`)
}
