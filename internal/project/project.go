package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/apsuite/internal/model"
)

// SaveProject writes p to path as YAML, creating parent directories.
func SaveProject(path string, p model.Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return writeFile(path, data)
}

// LoadProject reads a project file. Settings omitted from the file keep
// their defaults; the result is validated before it is returned. Instances
// are validated by the engines that consume them.
func LoadProject(path string) (model.Project, error) {
	return LoadProjectWithConfig(path, model.DefaultAppConfig())
}

// LoadProjectWithConfig is LoadProject with the settings omitted from the
// file taken from cfg.
func LoadProjectWithConfig(path string, cfg model.AppConfig) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	p := NewProjectFromConfig("", cfg)
	if err := yaml.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project %s: %w", path, err)
	}
	if err := p.Settings.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("project %s: %w", path, err)
	}
	return p, nil
}

// NewProjectFromConfig returns an empty project carrying the configured
// default settings.
func NewProjectFromConfig(name string, cfg model.AppConfig) model.Project {
	p := model.NewProject()
	if name != "" {
		p.Name = name
	}
	cfg.ApplyToProject(&p)
	return p
}
