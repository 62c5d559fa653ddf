package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog   string `mapstructure:"catalog"`    // empty = built-in journal
	LogFile   string `mapstructure:"log_file"`   // empty = no logging
	LogLevel  string `mapstructure:"log_level"`
	Mouse     bool   `mapstructure:"mouse"`
	ExportDir string `mapstructure:"export_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	exportDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		exportDir = filepath.Join(home, "Downloads")
	}

	return Config{
		Catalog:   "",
		LogFile:   "",
		LogLevel:  "warn",
		Mouse:     true,
		ExportDir: exportDir,
	}
}

// NewViper returns a viper instance with defaults and DIARIO_ env overrides.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("catalog", defaults.Catalog)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("mouse", defaults.Mouse)
	v.SetDefault("export_dir", defaults.ExportDir)

	v.SetEnvPrefix("DIARIO")
	v.AutomaticEnv()

	return v
}

// LoadConfig reads the config file into v and decodes it.
// With an empty path the default location is tried and a missing file is not an error.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(ExpandHome(path))
	} else {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.Catalog = ExpandHome(config.Catalog)
	config.LogFile = ExpandHome(config.LogFile)
	config.ExportDir = ExpandHome(config.ExportDir)

	return &config, nil
}

// DefaultConfigDir returns the default config directory: ~/.config/diario
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "diario"), nil
}
