package model

// AppConfig holds application-wide preferences and the default engine
// settings applied to new projects.
type AppConfig struct {
	Settings Settings `json:"settings" yaml:"settings" mapstructure:"settings"`

	// Application preferences
	LogLevel       string   `json:"log_level" yaml:"log_level" mapstructure:"log_level"`    // logrus level name
	LogFormat      string   `json:"log_format" yaml:"log_format" mapstructure:"log_format"` // "text" or "json"
	RecentProjects []string `json:"recent_projects" yaml:"recent_projects" mapstructure:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with DefaultSettings and
// text logging at info level.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Settings:       DefaultSettings(),
		LogLevel:       "info",
		LogFormat:      "text",
		RecentProjects: []string{},
	}
}

// ApplyToProject copies the configured default settings into p. This is
// used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Settings = c.Settings
}

// AddRecentProject moves path to the front of the recent list, keeping at
// most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	out := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			out = append(out, p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	c.RecentProjects = out
}
