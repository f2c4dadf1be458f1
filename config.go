// Package ember is the root of the ember sprite-editor toolkit. It holds
// the TOML application configuration consumed by the ui package's Manager.
package ember

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the ember.toml configuration file.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Tooltip TooltipConfig `toml:"tooltip"`
}

// UIConfig holds global toolkit tuning knobs.
type UIConfig struct {
	// GUIScale multiplies pixel constants for high-density displays.
	GUIScale int `toml:"gui_scale"`
}

// TooltipConfig tunes the tooltip subsystem.
type TooltipConfig struct {
	// DelayMs is how long the pointer must rest on a widget before its
	// tooltip appears, in milliseconds.
	DelayMs int `toml:"delay_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		UI:      UIConfig{GUIScale: 1},
		Tooltip: TooltipConfig{DelayMs: 300},
	}
}

// LoadConfig reads and parses an ember.toml file. Missing or invalid
// fields fall back to defaults rather than failing.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// TooltipDelay returns the configured hover delay as a duration.
func (c Config) TooltipDelay() time.Duration {
	return time.Duration(c.Tooltip.DelayMs) * time.Millisecond
}

// normalize clamps out-of-range values back to their defaults.
func (c *Config) normalize() {
	if c.UI.GUIScale < 1 {
		c.UI.GUIScale = 1
	}
	if c.Tooltip.DelayMs <= 0 {
		c.Tooltip.DelayMs = 300
	}
}
