package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WheelConfig stores wheel display preferences.
type WheelConfig struct {
	Radius    float64 `json:"radius,omitempty"`
	HoleRatio float64 `json:"holeRatio,omitempty"`
}

// DeviceConfig identifies the Lumatone's MIDI port.
type DeviceConfig struct {
	PortName    string `json:"portName,omitempty"`
	AutoConnect bool   `json:"autoConnect,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Device       DeviceConfig `json:"device,omitempty"`
	Wheel        WheelConfig  `json:"wheel,omitempty"`
	LastKeymapID string       `json:"lastKeymapId,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			PortName:    "Lumatone",
			AutoConnect: true,
		},
		Wheel: WheelConfig{
			Radius:    300,
			HoleRatio: 0.8,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tonewheel"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Wheel.Radius <= 0 {
		cfg.Wheel.Radius = 300
	}
	if cfg.Wheel.HoleRatio <= 0 || cfg.Wheel.HoleRatio >= 1 {
		cfg.Wheel.HoleRatio = 0.8
	}
	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
