// Package config provides configuration management for musicscales.
//
// This package handles:
//   - Loading settings from JSON, YAML or TOML files through viper
//   - SCALES_* environment overrides
//   - Default configuration values
//   - Saving settings as JSON
//   - Conversion to model.ModuloMode and format.Format for other packages
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Built-in catalog, floored transposition, JSON exports
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/scales.yaml")
//	// Uses defaults if the file doesn't exist
//
// # Saving Settings
//
//	settings.CatalogPaths = []string{"/etc/scales/base.yaml"}
//	err := settings.Save("/path/to/scales.json")
//
// # Configuration Options
//
//   - catalog_paths: catalog files replacing the built-in catalog
//   - watch: keep exporting as catalog files change
//   - load_workers: concurrent catalog file decoders
//   - transpose_mode: floored (default) or truncated
//   - export_format / export_path: defaults for the export command
//   - tag_comment: also write the scale comment frame when tagging
//   - tag_workers: files tagged concurrently
//   - verbose: log catalog loading
package config
