// Package util provides configuration and logging for nmapcraft.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It never holds a scan.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Program is the scanner binary name commands start with.
	Program string `mapstructure:"program"`

	// Presets maps a name to a full command line.
	Presets map[string]string `mapstructure:"presets"`

	// Report settings
	ReportOutputDir string `mapstructure:"report_output_dir"`

	Completion CompletionConfig `mapstructure:"completion"`
	TUI        TUIConfig        `mapstructure:"tui"`
}

// CompletionConfig controls path completion in the editor.
type CompletionConfig struct {
	MaxEntries int  `mapstructure:"max_entries"`
	ShowHidden bool `mapstructure:"show_hidden"`
}

// TUIConfig controls the interactive editor.
type TUIConfig struct {
	ShowHelp bool `mapstructure:"show_help"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".nmapcraft")

	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		LogFile:  filepath.Join(dataDir, "nmapcraft.log"),
		Program:  "nmap",

		Presets: map[string]string{
			"quick":     "nmap -T4 -F",
			"intense":   "nmap -T4 -A -v",
			"ping":      "nmap -sn",
			"all-tcp":   "nmap -p 1-65535 -T4 -A -v",
			"udp-top":   "nmap -sS -sU -T4 --top-ports 100",
			"stealth":   "nmap -sS -T2 -f --data-length 24",
			"discovery": "nmap -sn -PE -PS22,80,443 -PA80 -PU53",
		},

		ReportOutputDir: filepath.Join(dataDir, "reports"),

		Completion: CompletionConfig{
			MaxEntries: 200,
			ShowHidden: false,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
	}
}

// LoadConfig loads configuration into v from cfgFile, or from config.yaml
// in the data directory or the working directory when cfgFile is empty.
// A missing config file is not an error.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	// Set defaults in viper
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("program", cfg.Program)
	v.SetDefault("presets", cfg.Presets)
	v.SetDefault("report_output_dir", cfg.ReportOutputDir)
	v.SetDefault("completion.max_entries", cfg.Completion.MaxEntries)
	v.SetDefault("completion.show_hidden", cfg.Completion.ShowHidden)
	v.SetDefault("tui.show_help", cfg.TUI.ShowHelp)

	v.SetEnvPrefix("NMAPCRAFT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(cfg.DataDir)
		v.AddConfigPath(".")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Completion.MaxEntries <= 0 {
		cfg.Completion.MaxEntries = DefaultConfig().Completion.MaxEntries
	}

	return cfg, nil
}

// PresetNames returns the configured preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the command line of a named preset.
func (c *Config) Preset(name string) (string, error) {
	cmd, ok := c.Presets[name]
	if !ok {
		return "", fmt.Errorf("unknown preset %q", name)
	}
	return cmd, nil
}

// EnsureDir ensures a directory exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
