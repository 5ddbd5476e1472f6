package format

import (
	"path/filepath"
	"strings"

	"github.com/handiism/musicscales/internal/errs"
)

// Format identifies a catalog file encoding.
type Format int

const (
	// FormatJSON encodes with github.com/goccy/go-json.
	FormatJSON Format = iota

	// FormatYAML encodes with gopkg.in/yaml.v3.
	FormatYAML

	// FormatTOML encodes with github.com/pelletier/go-toml/v2.
	// Scales become a [[scales]] array of tables.
	FormatTOML

	// FormatText is a plain listing for terminals. Encode only.
	FormatText
)

// Formats returns every format in declaration order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatText}
}

// String returns the format name used in configuration and flags.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatTOML:
		return ".toml"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// Decodable reports whether Decode accepts the format.
func (f Format) Decodable() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// Parse resolves a format name ("json", "yaml", "yml", "toml", "text", "txt").
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return 0, errs.New(errs.CodeUnsupportedFormat, errs.WithField(name))
	}
}

// FromPath picks the format from a file extension.
func FromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, errs.New(errs.CodeUnsupportedFormat,
			errs.WithField(path),
			errs.WithMessage("file has no extension"))
	}
	return Parse(ext)
}
