package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

type Config struct {
	Environment     Environment `toml:"environment"`
	ConfigDirectory string      `toml:"config_directory"`
	LogDirectory    string      `toml:"log_directory"`

	// RecycleBin is the directory deleted media gets moved into.
	// Empty means no recycle bin is configured.
	RecycleBin string `toml:"recycle_bin"`
}

// RecycleBinPath satisfies the recycle bin lookup the root folder service needs.
func (conf Config) RecycleBinPath() string {
	return conf.RecycleBin
}

func ReadConfig(configPath string) (Config, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("os.UserHomeDir: %w", err)
		}
		configDir := filepath.Join(homeDir, ".config", "radarr-rootfolders")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return Config{}, fmt.Errorf("os.MkdirAll: %w", err)
		}

		configPath = filepath.Join(configDir, "default.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return withDefaults(Config{ConfigDirectory: configDir}), nil
		}
	}

	contents, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var conf Config
	if _, err := toml.Decode(string(contents), &conf); err != nil {
		return conf, fmt.Errorf("toml.Decode: %w", err)
	}
	if conf.ConfigDirectory == "" {
		conf.ConfigDirectory = filepath.Dir(configPath)
	}
	return withDefaults(conf), nil
}

func withDefaults(conf Config) Config {
	if conf.Environment == "" {
		conf.Environment = EnvironmentProduction
	}
	if conf.LogDirectory == "" {
		conf.LogDirectory = filepath.Join(conf.ConfigDirectory, "logs")
	}
	return conf
}
