package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/musicscales/internal/format"
	"github.com/handiism/musicscales/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.TransposeMode != "floored" || settings.ExportFormat != "json" || settings.LoadWorkers != 4 {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"scales.yaml", "catalog_paths:\n  - a.yaml\n  - b.toml\ntranspose_mode: truncated\nexport_format: toml\n"},
		{"scales.toml", "catalog_paths = [\"a.yaml\", \"b.toml\"]\ntranspose_mode = \"truncated\"\nexport_format = \"toml\"\n"},
		{"scales.json", `{"catalog_paths":["a.yaml","b.toml"],"transpose_mode":"truncated","export_format":"toml"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			settings, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(settings.CatalogPaths) != 2 || settings.CatalogPaths[1] != "b.toml" {
				t.Errorf("CatalogPaths = %v", settings.CatalogPaths)
			}
			mode, _ := settings.ToModuloMode()
			if mode != model.ModuloTruncated {
				t.Errorf("ToModuloMode() = %v", mode)
			}
			f, _ := settings.ToFormat()
			if f != format.FormatTOML {
				t.Errorf("ToFormat() = %v", f)
			}
			// Untouched keys keep their defaults.
			if !settings.TagComment {
				t.Error("TagComment default lost")
			}
		})
	}
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scales.yaml")
	if err := os.WriteFile(path, []byte("transpose_mode: euclid\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown transpose mode")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("SCALES_TRANSPOSE_MODE", "legacy")
	t.Setenv("SCALES_EXPORT_FORMAT", "yaml")

	settings, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if mode, _ := settings.ToModuloMode(); mode != model.ModuloTruncated {
		t.Errorf("ToModuloMode() = %v", mode)
	}
	if f, _ := settings.ToFormat(); f != format.FormatYAML {
		t.Errorf("ToFormat() = %v", f)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scales.json")

	settings := DefaultSettings()
	settings.CatalogPaths = []string{"/etc/scales/base.yaml"}
	settings.Watch = true
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Watch || len(loaded.CatalogPaths) != 1 || loaded.CatalogPaths[0] != "/etc/scales/base.yaml" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
