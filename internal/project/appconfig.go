// Package project persists application configuration and problem files.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/apsuite/internal/model"
)

// EnvPrefix prefixes every environment override, e.g.
// APSUITE_SETTINGS_PACKING1D_ALGORITHM=BFD.
const EnvPrefix = "APSUITE"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.apsuite/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".apsuite")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// SaveAppConfig persists an AppConfig to the given path as YAML.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFile(path, data)
}

// LoadAppConfig reads an AppConfig from the given path (YAML or JSON, by
// extension) and applies APSUITE_* environment overrides. Keys missing from
// the file keep their defaults. If the file does not exist, it returns
// DefaultAppConfig with the overrides and no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults, err := defaultConfigMap()
	if err != nil {
		return model.AppConfig{}, err
	}
	if err := v.MergeConfigMap(defaults); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return model.AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return model.AppConfig{}, err
		}
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	if err := config.Settings.Validate(); err != nil {
		return model.AppConfig{}, err
	}
	return config, nil
}

// defaultConfigMap renders DefaultAppConfig as the nested map viper merges
// the config file onto.
func defaultConfigMap() (map[string]any, error) {
	data, err := yaml.Marshal(model.DefaultAppConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defaults: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}
	return m, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// RecordRecentProject moves projectPath to the front of the recent list in
// the config file at configPath. It does nothing when that file does not
// exist, so reading a project never creates a config.
func RecordRecentProject(configPath, projectPath string, limit int) error {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if abs, err := filepath.Abs(projectPath); err == nil {
		projectPath = abs
	}
	config, err := LoadAppConfig(configPath)
	if err != nil {
		return err
	}
	config.AddRecentProject(projectPath, limit)
	return SaveAppConfig(configPath, config)
}
