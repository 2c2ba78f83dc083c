package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.yaml")

	p := model.NewProject()
	p.Name = "mixed"
	p.Packing1D = &model.Instance1D{Capacity: 1, Items: []float64{0.4, 0.6}}
	p.Packing2D = &model.Instance2D{W: 4, H: 2, Rects: []model.Rect{{W: 2, H: 1, ID: 3}}}
	p.Identical = &model.IdenticalInstance{Machines: 2, Jobs: []float64{1, 2, 3}}
	p.Unrelated = &model.UnrelatedInstance{P: [][]float64{{10, 1}, {1, 10}}}

	require.NoError(t, SaveProject(path, p))
	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadProjectDefaultsMissingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.yaml")
	content := "name: small\npacking1d:\n  capacity: 10\n  items: [3, 7, 5]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "small", p.Name)
	assert.Equal(t, model.DefaultSettings(), p.Settings)
	require.NotNil(t, p.Packing1D)
	assert.Equal(t, []float64{3, 7, 5}, p.Packing1D.Items)
	assert.Nil(t, p.Packing2D)
}

func TestLoadProjectWithConfigLayersSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  packing2d:\n    algorithm: SHELF\n"), 0644))

	cfg := model.DefaultAppConfig()
	cfg.Settings.Packing1D.Algorithm = model.AlgorithmBestFit
	cfg.Settings.Packing2D.Algorithm = model.AlgorithmGuillotine

	p, err := LoadProjectWithConfig(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, model.AlgorithmBestFit, p.Settings.Packing1D.Algorithm, "from config")
	assert.Equal(t, model.AlgorithmShelf, p.Settings.Packing2D.Algorithm, "file wins")
}

func TestLoadProjectRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  unrelated:\n    greedy_order: shortest\n"), 0644))

	_, err := LoadProject(path)
	assert.ErrorIs(t, err, model.ErrInvalidSetting)
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewProjectFromConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Settings.Identical.Algorithm = model.AlgorithmList

	p := NewProjectFromConfig("demo", cfg)
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, model.AlgorithmList, p.Settings.Identical.Algorithm)

	assert.Equal(t, "Untitled", NewProjectFromConfig("", cfg).Name)
}
