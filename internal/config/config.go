package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"versemate/internal/domain"
	"versemate/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	SeedDBPath     string     `toml:"seed_db_path"`
	BibleVersion   string     `toml:"bible_version"`   // version_key in the seed db
	LanguageCode   string     `toml:"language_code"`   // topic language
	WindowSize     int        `toml:"window_size"`     // pager slots, odd
	SyncDebounceMs int        `toml:"sync_debounce_ms"` // route-sync delay
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowVerseNumbers bool `toml:"show_verse_numbers"`
	ShowSlotStrip    bool `toml:"show_slot_strip"` // the slot debug strip under the header
}

// EffectiveWindowSize returns the window size guaranteed odd and at least 3,
// regardless of what a hand-edited config file says.
func (c *Config) EffectiveWindowSize() int {
	size := c.WindowSize
	if size < 3 {
		size = 3
	}
	if size%2 == 0 {
		size++
	}
	return size
}

// SyncDebounce returns the debounce interval as a duration.
func (c *Config) SyncDebounce() time.Duration {
	ms := c.SyncDebounceMs
	if ms <= 0 {
		ms = 80
	}
	return time.Duration(ms) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "versemate")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything an older or hand-edited file leaves out
	defaults := DefaultConfig()
	if cfg.SeedDBPath == "" {
		cfg.SeedDBPath = defaults.SeedDBPath
	}
	if cfg.BibleVersion == "" {
		cfg.BibleVersion = defaults.BibleVersion
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = defaults.LanguageCode
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = defaults.WindowSize
	}
	if cfg.SyncDebounceMs == 0 {
		cfg.SyncDebounceMs = defaults.SyncDebounceMs
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	seedPath := "versemate-seed.db"
	if configDir, err := os.UserConfigDir(); err == nil {
		seedPath = filepath.Join(configDir, "versemate", "versemate-seed.db")
	}

	return &Config{
		Version:        1,
		SeedDBPath:     seedPath,
		BibleVersion:   "NASB1995",
		LanguageCode:   "en",
		WindowSize:     5,
		SyncDebounceMs: 80,
		UISettings: UISettings{
			ShowVerseNumbers: true,
			ShowSlotStrip:    true,
		},
	}
}
