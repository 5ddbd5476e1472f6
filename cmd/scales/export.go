package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/musicscales/internal/catalog"
	"github.com/handiism/musicscales/internal/format"
	ioutils "github.com/handiism/musicscales/internal/io"
	"github.com/handiism/musicscales/internal/model"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as json, yaml, toml or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			f, err := a.settings.ToFormat()
			if name, _ := cmd.Flags().GetString("format"); name != "" {
				f, err = format.Parse(name)
			}
			if err != nil {
				return err
			}
			enc := format.NewEncoder(f)

			if err := a.export(cmd, enc, cat); err != nil {
				return err
			}
			if !a.settings.Watch {
				return nil
			}
			return a.exportOnReload(cmd, enc, cat)
		},
	}
	cmd.Flags().String("format", "", "output format: json, yaml, toml, text (default from config)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("split-dir", "", "write one file per scale into this directory")
	cmd.Flags().Bool("watch", false, "export again whenever a catalog file changes")
	_ = a.v.BindPFlag("watch", cmd.Flags().Lookup("watch"))
	return cmd
}

func (a *app) export(cmd *cobra.Command, enc *format.Encoder, cat *catalog.Catalog) error {
	if dir, _ := cmd.Flags().GetString("split-dir"); dir != "" {
		return a.exportSplit(cmd, enc, dir, cat.Scales())
	}

	data, err := enc.Encode(cat.Scales())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = a.settings.ExportPath
	}
	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := ioutils.WriteFile(cmd.Context(), output, data); err != nil {
		return err
	}
	a.logger.Printf("exported %d scales to %s", cat.Len(), output)
	return nil
}

// exportSplit writes each scale to <dir>/<sanitized name><ext>.
func (a *app) exportSplit(cmd *cobra.Command, enc *format.Encoder, dir string, scales []model.Scale) error {
	for _, s := range scales {
		data, err := enc.Encode([]model.Scale{s})
		if err != nil {
			return err
		}
		path := filepath.Join(dir, ioutils.SanitizeFileName(s.Name())+enc.Format().Extension())
		if err := ioutils.WriteFile(cmd.Context(), path, data); err != nil {
			return err
		}
		a.logger.Printf("exported %q to %s", s.Name(), path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scales to %s\n", len(scales), dir)
	return nil
}

// exportOnReload repeats the export for every successful reload until the
// command context ends.
func (a *app) exportOnReload(cmd *cobra.Command, enc *format.Encoder, cat *catalog.Catalog) error {
	if len(a.settings.CatalogPaths) == 0 {
		return errors.New("export --watch needs at least one --catalog file")
	}

	loader := catalog.NewLoader(a.settings.LoadWorkers, a.logger)
	w, err := catalog.NewWatcher(catalog.NewStore(cat), loader, a.logger, a.settings.CatalogPaths...)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-w.Reloads:
			if r.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: reload failed, export skipped: %v\n", r.File, r.Err)
				continue
			}
			if err := a.export(cmd, enc, r.Catalog); err != nil {
				return err
			}
		}
	}
}
