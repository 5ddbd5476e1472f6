package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/handiism/musicscales/internal/format"
	"github.com/handiism/musicscales/internal/model"
)

// EnvPrefix is the prefix of environment overrides (SCALES_TRANSPOSE_MODE, ...).
const EnvPrefix = "SCALES"

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	CatalogPaths []string `json:"catalog_paths" mapstructure:"catalog_paths"`
	Watch        bool     `json:"watch" mapstructure:"watch"`
	LoadWorkers  int      `json:"load_workers" mapstructure:"load_workers"`

	// Transposition
	TransposeMode string `json:"transpose_mode" mapstructure:"transpose_mode"` // floored, truncated

	// Export settings
	ExportFormat string `json:"export_format" mapstructure:"export_format"` // json, yaml, toml, text
	ExportPath   string `json:"export_path" mapstructure:"export_path"`

	// Tagging
	TagComment bool `json:"tag_comment" mapstructure:"tag_comment"`
	TagWorkers int  `json:"tag_workers" mapstructure:"tag_workers"`

	// Output
	Verbose bool `json:"verbose" mapstructure:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPaths:  nil,
		Watch:         false,
		LoadWorkers:   4,
		TransposeMode: "floored",
		ExportFormat:  "json",
		ExportPath:    "",
		TagComment:    true,
		TagWorkers:    4,
		Verbose:       false,
	}
}

// NewViper returns a viper instance seeded with the defaults and bound
// to SCALES_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault("catalog_paths", d.CatalogPaths)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("load_workers", d.LoadWorkers)
	v.SetDefault("transpose_mode", d.TransposeMode)
	v.SetDefault("export_format", d.ExportFormat)
	v.SetDefault("export_path", d.ExportPath)
	v.SetDefault("tag_comment", d.TagComment)
	v.SetDefault("tag_workers", d.TagWorkers)
	v.SetDefault("verbose", d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads settings from a JSON, YAML or TOML file.
//
// A missing file is not an error: defaults (plus environment overrides)
// are returned. An empty path skips the file entirely.
func Load(path string) (*Settings, error) {
	v := NewViper()
	if err := ReadInto(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// ReadInto reads path into v, ignoring a missing file.
func ReadInto(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// FromViper decodes settings from v and validates the enumerated fields.
func FromViper(v *viper.Viper) (*Settings, error) {
	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := settings.ToModuloMode(); err != nil {
		return nil, err
	}
	if _, err := settings.ToFormat(); err != nil {
		return nil, fmt.Errorf("export_format: %w", err)
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToModuloMode converts TransposeMode.
func (s *Settings) ToModuloMode() (model.ModuloMode, error) {
	return model.ParseModuloMode(s.TransposeMode)
}

// ToFormat converts ExportFormat.
func (s *Settings) ToFormat() (format.Format, error) {
	return format.Parse(s.ExportFormat)
}
