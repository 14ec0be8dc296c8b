package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"safety-board/log"
)

const (
	ConfigFileName = "config.json"
	StoreFileName  = "store.json"

	DefaultLayoutKey = "safety-board.layout"
	DefaultSlotsKey  = "safety-board.slots"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".safety-board"), nil
}

// Config represents the application configuration
type Config struct {
	// StorePath is the key-value store file. Relative paths are resolved
	// against the config directory.
	StorePath string `json:"store_path"`
	// LayoutKey is the store key holding the splitter percentages.
	LayoutKey string `json:"layout_key"`
	// SlotsKey is the store key holding the slot to panel assignment.
	SlotsKey string `json:"slots_key"`
	// CellWidthPx and CellHeightPx map one terminal cell to pixels for the
	// scale functions.
	CellWidthPx  int `json:"cell_width_px"`
	CellHeightPx int `json:"cell_height_px"`
	// FrameIntervalMs is the length of one animation frame; viewport and
	// box notifications are coalesced to one recomputation per frame.
	FrameIntervalMs int `json:"frame_interval_ms"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		StorePath:       StoreFileName,
		LayoutKey:       DefaultLayoutKey,
		SlotsKey:        DefaultSlotsKey,
		CellWidthPx:     8,
		CellHeightPx:    16,
		FrameIntervalMs: 16,
	}
}

// FrameInterval returns FrameIntervalMs as a duration.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// ResolveStorePath returns the absolute store path.
func (c *Config) ResolveStorePath() (string, error) {
	if filepath.IsAbs(c.StorePath) {
		return c.StorePath, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, c.StorePath), nil
}

// fillDefaults replaces zero or invalid fields with their defaults so a
// partially written config file still yields a usable Config.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.StorePath == "" {
		c.StorePath = def.StorePath
	}
	if c.LayoutKey == "" {
		c.LayoutKey = def.LayoutKey
	}
	if c.SlotsKey == "" {
		c.SlotsKey = def.SlotsKey
	}
	if c.CellWidthPx <= 0 {
		c.CellWidthPx = def.CellWidthPx
	}
	if c.CellHeightPx <= 0 {
		c.CellHeightPx = def.CellHeightPx
	}
	if c.FrameIntervalMs <= 0 {
		c.FrameIntervalMs = def.FrameIntervalMs
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.fillDefaults()
	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
