package buttonnode

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user's audio preferences.
type Settings struct {
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 to 1.0
}

// DefaultSettings returns sound and music on at 0.8 volume.
func DefaultSettings() Settings {
	return Settings{
		MusicEnabled: true,
		SoundEnabled: true,
		SoundVolume:  0.8,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// SettingsStore keeps Settings in memory and persists them through gdata.
// A store without a gdata manager works in memory only.
type SettingsStore struct {
	data     *gdata.Manager
	settings Settings
}

// NewSettingsStore creates a store and loads any saved settings. A failed
// load is logged and leaves the defaults in place.
func NewSettingsStore(data *gdata.Manager) *SettingsStore {
	s := &SettingsStore{data: data, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return s
}

// Load replaces the in-memory settings with the saved ones, or with the
// defaults when nothing has been saved.
func (s *SettingsStore) Load() error {
	if s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultSettings()
		return nil
	}
	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clamp01(loaded.SoundVolume)
	s.settings = loaded
	return nil
}

// Save writes the settings. It is a no-op without a gdata manager.
func (s *SettingsStore) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// SetMusicEnabled turns music on or off. Call Save to persist.
func (s *SettingsStore) SetMusicEnabled(enabled bool) {
	s.settings.MusicEnabled = enabled
}

// SetSoundEnabled turns sound effects on or off. Call Save to persist.
func (s *SettingsStore) SetSoundEnabled(enabled bool) {
	s.settings.SoundEnabled = enabled
}

// SetSoundVolume sets the effect volume, clamped to [0, 1].
func (s *SettingsStore) SetSoundVolume(v float64) {
	s.settings.SoundVolume = clamp01(v)
}
