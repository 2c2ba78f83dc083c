package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsPreset is a named, reusable set of engine settings.
type SettingsPreset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Settings    Settings `json:"settings"`
}

// NewSettingsPreset creates a preset with a fresh short ID.
func NewSettingsPreset(name, description string, settings Settings) SettingsPreset {
	now := time.Now().UTC().Format(time.RFC3339)
	return SettingsPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
	}
}

// PresetStore holds a collection of settings presets.
type PresetStore struct {
	Presets []SettingsPreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []SettingsPreset{},
	}
}

// Put adds p, replacing any preset with the same name. A replaced preset
// keeps its ID and creation time.
func (ps *PresetStore) Put(p SettingsPreset) {
	if old := ps.FindByName(p.Name); old != nil {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
		*old = p
		return
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID or name. Returns true if found and removed.
func (ps *PresetStore) Remove(key string) bool {
	for i, p := range ps.Presets {
		if p.ID == key || p.Name == key {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *SettingsPreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *SettingsPreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names lists preset names in store order.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
