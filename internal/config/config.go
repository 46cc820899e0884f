package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"bufcycle/internal/domain"
	"bufcycle/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int `toml:"version"`
	// SkipFiletypes extends the built-in exclusion set of plugin-owned
	// window filetypes that navigation ignores.
	SkipFiletypes []string    `toml:"skip_filetypes"`
	Keys          KeySettings `toml:"keys"`
	UISettings    UISettings  `toml:"ui"`
}

// KeySettings holds per-action key overrides. An empty list keeps the
// built-in binding for that action.
type KeySettings struct {
	Next  []string `toml:"next"`
	Prev  []string `toml:"prev"`
	First []string `toml:"first"`
	Last  []string `toml:"last"`
	Close []string `toml:"close"`
	Open  []string `toml:"open"`
	Help  []string `toml:"help"`
	Quit  []string `toml:"quit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowBufferNumbers    bool `toml:"show_buffer_numbers"`
	ConfirmCloseModified bool `toml:"confirm_close_modified"`
}

// ExclusionSet returns the full set of skippable filetypes: the built-in
// plugin-window filetypes plus any configured extras.
func (c *Config) ExclusionSet() []string {
	set := domain.DefaultSkipFiletypes()
	seen := make(map[string]bool, len(set))
	for _, ft := range set {
		seen[ft] = true
	}
	for _, ft := range c.SkipFiletypes {
		if ft != "" && !seen[ft] {
			set = append(set, ft)
			seen[ft] = true
		}
	}
	return set
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

	bufcycleDir := filepath.Join(configDir, "bufcycle")
	os.MkdirAll(bufcycleDir, 0755)

	return &configService{
		filePath: filepath.Join(bufcycleDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path, returning defaults
// when no file exists yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
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

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{SkipFiletypes: cfg.ExclusionSet()})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			ShowBufferNumbers:    true,
			ConfirmCloseModified: true,
		},
	}
}
