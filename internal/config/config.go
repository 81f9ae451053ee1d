// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for wheelr.
type Config struct {
	VisibleItems   int     `mapstructure:"visible_items" yaml:"visible_items"`
	Cyclic         bool    `mapstructure:"cyclic" yaml:"cyclic"`
	DrawShadows    bool    `mapstructure:"draw_shadows" yaml:"draw_shadows"`
	ShadowColor    string  `mapstructure:"shadow_color" yaml:"shadow_color"`
	DrawHighlight  bool    `mapstructure:"draw_highlight" yaml:"draw_highlight"`
	HighlightColor string  `mapstructure:"highlight_color" yaml:"highlight_color"`
	DrawDivider    bool    `mapstructure:"draw_divider" yaml:"draw_divider"`
	Interpolator   string  `mapstructure:"interpolator" yaml:"interpolator"`
	FlingThreshold float64 `mapstructure:"fling_threshold" yaml:"fling_threshold"`
	RowScale       int     `mapstructure:"row_scale" yaml:"row_scale"`
	DataDir        string  `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string  `mapstructure:"log_file" yaml:"log_file"`
	Journal        bool    `mapstructure:"journal" yaml:"journal"`
	Remember       bool    `mapstructure:"remember" yaml:"remember"`
}

// Defaults returns the configuration used when no file or env var sets a key.
func Defaults() *Config {
	return &Config{
		VisibleItems:   5,
		Cyclic:         false,
		DrawShadows:    true,
		ShadowColor:    "#1e1e2e",
		DrawHighlight:  true,
		HighlightColor: "#cba6f7",
		DrawDivider:    true,
		Interpolator:   "decelerate",
		FlingThreshold: scroller.DefaultFlingThreshold,
		RowScale:       8,
		DataDir:        ".wheelr",
		LogLevel:       "info",
		LogFile:        "",
		Journal:        false,
		Remember:       true,
	}
}

var envKeys = []string{
	"visible_items",
	"cyclic",
	"draw_shadows",
	"shadow_color",
	"draw_highlight",
	"highlight_color",
	"draw_divider",
	"interpolator",
	"fling_threshold",
	"row_scale",
	"data_dir",
	"log_level",
	"log_file",
	"journal",
	"remember",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("wheelr")

	d := Defaults()
	v.SetDefault("visible_items", d.VisibleItems)
	v.SetDefault("cyclic", d.Cyclic)
	v.SetDefault("draw_shadows", d.DrawShadows)
	v.SetDefault("shadow_color", d.ShadowColor)
	v.SetDefault("draw_highlight", d.DrawHighlight)
	v.SetDefault("highlight_color", d.HighlightColor)
	v.SetDefault("draw_divider", d.DrawDivider)
	v.SetDefault("interpolator", d.Interpolator)
	v.SetDefault("fling_threshold", d.FlingThreshold)
	v.SetDefault("row_scale", d.RowScale)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("journal", d.Journal)
	v.SetDefault("remember", d.Remember)

	// Setup ENV binding with WHEELR_ prefix
	v.SetEnvPrefix("WHEELR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/int parsing
	for _, key := range envKeys {
		if err := v.BindEnv(key, "WHEELR_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that would otherwise be silently ignored by the picker.
func (c *Config) Validate() error {
	if c.VisibleItems < 1 {
		return fmt.Errorf("visible_items must be at least 1, got %d", c.VisibleItems)
	}
	if c.RowScale < 1 {
		return fmt.Errorf("row_scale must be at least 1, got %d", c.RowScale)
	}
	if c.FlingThreshold < 0 {
		return fmt.Errorf("fling_threshold must not be negative, got %g", c.FlingThreshold)
	}
	if _, err := gfx.ParseHex(c.ShadowColor); err != nil {
		return fmt.Errorf("shadow_color: %w", err)
	}
	if _, err := gfx.ParseHex(c.HighlightColor); err != nil {
		return fmt.Errorf("highlight_color: %w", err)
	}
	if _, err := scroller.ParseInterpolator(c.Interpolator); err != nil {
		return fmt.Errorf("interpolator: %w", err)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/wheelr/wheelr.yml or $XDG_CONFIG_HOME/wheelr/wheelr.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wheelr", "wheelr.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wheelr", "wheelr.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./wheelr.yml in the current working directory.
func ProjectPath() string {
	return "wheelr.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
