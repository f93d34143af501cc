package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/yuiclaw"
	projectConfigDir = ".yuiclaw"
	configFileName   = "config.yaml"
	dotenvFileName   = ".env"
)

// LoadConfig loads the yuiclaw configuration by layering default, user, and project settings.
func LoadConfig() (YuiclawConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return YuiclawConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return YuiclawConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFromPath layers a single config file over the defaults.
func LoadConfigFromPath(path string) (YuiclawConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return YuiclawConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

// LoadDotenv loads ~/.config/yuiclaw/.env into the process environment.
// Variables that are already set keep their value; the file only provides
// defaults. A missing file is not an error.
func LoadDotenv() (string, error) {
	path, err := getDotenvPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}
	if err := godotenv.Load(path); err != nil {
		return path, fmt.Errorf("error loading %s: %w", path, err)
	}
	return path, nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

var getDotenvPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dotenvFileName), nil
}

// loadConfigFromFile loads a YuiclawConfig from a YAML file.
func loadConfigFromFile(filePath string) (YuiclawConfig, error) {
	var config YuiclawConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return YuiclawConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return YuiclawConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay YuiclawConfig) YuiclawConfig {
	merged := base

	if overlay.SocketPath != "" {
		merged.SocketPath = overlay.SocketPath
	}
	if overlay.DefaultProvider != "" {
		merged.DefaultProvider = overlay.DefaultProvider
	}

	if overlay.Binaries.Bridge != "" {
		merged.Binaries.Bridge = overlay.Binaries.Bridge
	}
	if overlay.Binaries.TUI != "" {
		merged.Binaries.TUI = overlay.Binaries.TUI
	}
	if overlay.Binaries.TUIFallback != "" {
		merged.Binaries.TUIFallback = overlay.Binaries.TUIFallback
	}
	if overlay.Binaries.Memory != "" {
		merged.Binaries.Memory = overlay.Binaries.Memory
	}
	if overlay.Binaries.Scheduler != "" {
		merged.Binaries.Scheduler = overlay.Binaries.Scheduler
	}

	if overlay.Readiness.Attempts > 0 {
		merged.Readiness.Attempts = overlay.Readiness.Attempts
	}
	if overlay.Readiness.Delay > 0 {
		merged.Readiness.Delay = overlay.Readiness.Delay
	}
	if overlay.Readiness.ProbeTimeout > 0 {
		merged.Readiness.ProbeTimeout = overlay.Readiness.ProbeTimeout
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
