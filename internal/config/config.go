// Package config loads the wayfind editor configuration.
//
// Config file locations (priority order):
//  1. explicit -config flag
//  2. $WAYFIND_CONFIG
//  3. ./wayfind.yaml
//  4. ~/.config/wayfind/config.yaml
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full editor configuration.
type Config struct {
	// DatabasePath is the sqlite file holding wayfinding documents.
	DatabasePath string `yaml:"database_path"`
	// LogPath receives structured logs. Stdout would corrupt the
	// alternate screen, so logging always goes to a file.
	LogPath string `yaml:"log_path"`
	// ImageDir is prepended to relative floor image refs when resolving
	// natural image dimensions.
	ImageDir string `yaml:"image_dir"`
	// AutosaveQuiet is the debounce quiet period between the last edit
	// and the persistence write.
	AutosaveQuiet time.Duration `yaml:"autosave_quiet"`
	// DefaultImageW/H are the natural dimensions assumed for floors
	// whose image is missing or undecodable.
	DefaultImageW int `yaml:"default_image_width"`
	DefaultImageH int `yaml:"default_image_height"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		DatabasePath:  "./wayfind.db",
		LogPath:       "./wayfind.log",
		AutosaveQuiet: 2 * time.Second,
		DefaultImageW: 1600,
		DefaultImageH: 1200,
	}
}

// Load reads the config from path, or from the search locations when
// path is empty. A missing file yields defaults, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findPath()
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations the editor cannot run with.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database_path must not be empty")
	}
	if c.AutosaveQuiet <= 0 {
		return errors.New("autosave_quiet must be positive")
	}
	if c.DefaultImageW <= 0 || c.DefaultImageH <= 0 {
		return errors.New("default image dimensions must be positive")
	}
	return nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.LogPath == "" {
		c.LogPath = d.LogPath
	}
	if c.AutosaveQuiet == 0 {
		c.AutosaveQuiet = d.AutosaveQuiet
	}
	if c.DefaultImageW == 0 {
		c.DefaultImageW = d.DefaultImageW
	}
	if c.DefaultImageH == 0 {
		c.DefaultImageH = d.DefaultImageH
	}
}

func findPath() string {
	if p := os.Getenv("WAYFIND_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("wayfind.yaml"); err == nil {
		return "wayfind.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "wayfind", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
