package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/piwi3910/apsuite/internal/model"
)

// PresetsPath returns the preset store that sits next to the config file
// at configPath, e.g. ~/.apsuite/presets.json.
func PresetsPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "presets.json")
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store model.PresetStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	return writeFile(path, data)
}

// LoadPresets reads a preset store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewPresetStore(), nil
		}
		return model.PresetStore{}, err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.PresetStore{}, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}
	if store.Presets == nil {
		store.Presets = []model.SettingsPreset{}
	}
	return store, nil
}

// ApplyPreset replaces cfg's default settings with the named preset from
// the store at path. An unknown name is an ErrInvalidSetting.
func ApplyPreset(path, name string, cfg *model.AppConfig) error {
	store, err := LoadPresets(path)
	if err != nil {
		return err
	}
	p := store.FindByName(name)
	if p == nil {
		p = store.FindByID(name)
	}
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q", model.ErrInvalidSetting, name)
	}
	if err := p.Settings.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	cfg.Settings = p.Settings
	return nil
}
