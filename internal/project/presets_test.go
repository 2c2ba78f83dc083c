package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/model"
)

func TestPresetsPath(t *testing.T) {
	assert.Equal(t, filepath.Join("cfg", "presets.json"), PresetsPath(filepath.Join("cfg", "config.yaml")))
}

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")

	settings := model.DefaultSettings()
	settings.Unrelated.LocalSearchTimeLimit = 250 * time.Millisecond
	store := model.NewPresetStore()
	store.Put(model.NewSettingsPreset("slow", "Longer local search", settings))
	store.Put(model.NewSettingsPreset("default", "", model.DefaultSettings()))

	require.NoError(t, SavePresets(path, store))

	loaded, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, store, loaded)
}

func TestLoadPresets_NotFound(t *testing.T) {
	store, err := LoadPresets(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err, "missing file is not an error")
	assert.NotNil(t, store.Presets)
	assert.Empty(t, store.Presets)
}

func TestLoadPresets_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := LoadPresets(path)
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	settings := model.DefaultSettings()
	settings.Identical.Algorithm = model.AlgorithmList
	preset := model.NewSettingsPreset("list", "", settings)
	bad := model.DefaultSettings()
	bad.Packing1D.Algorithm = "NEXT_FIT"
	store := model.NewPresetStore()
	store.Put(preset)
	store.Put(model.NewSettingsPreset("broken", "", bad))
	require.NoError(t, SavePresets(path, store))

	cfg := model.DefaultAppConfig()
	require.NoError(t, ApplyPreset(path, "list", &cfg))
	assert.Equal(t, model.AlgorithmList, cfg.Settings.Identical.Algorithm)

	cfg = model.DefaultAppConfig()
	require.NoError(t, ApplyPreset(path, preset.ID, &cfg), "lookup by ID")
	assert.Equal(t, model.AlgorithmList, cfg.Settings.Identical.Algorithm)

	err := ApplyPreset(path, "missing", &cfg)
	assert.ErrorIs(t, err, model.ErrInvalidSetting)

	err = ApplyPreset(path, "broken", &cfg)
	assert.ErrorIs(t, err, model.ErrInvalidSetting)
}
