package main

import (
	"context"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/handiism/musicscales/internal/catalog"
	"github.com/handiism/musicscales/internal/config"
	"github.com/handiism/musicscales/internal/model"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "scales",
		Short:         "Query and transpose musical scales",
		Long:          "scales lists, filters and transposes a catalog of musical scales, exports it, and tags audio files with scale keys.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (json, yaml or toml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.StringSlice("catalog", nil, "catalog files or http(s) URLs to load instead of the built-in catalog")
	pf.String("mode", "", "transpose modulo mode: floored or truncated")

	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("catalog_paths", pf.Lookup("catalog"))
	_ = a.v.BindPFlag("transpose_mode", pf.Lookup("mode"))

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newTransposeCmd(a),
		newStatsCmd(a),
		newTypesCmd(a),
		newExportCmd(a),
		newTagCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.ReadInto(a.v, cfgFile); err != nil {
		return err
	}

	settings, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	out := io.Discard
	if settings.Verbose {
		out = cmd.ErrOrStderr()
	}
	a.logger = log.New(out, "scales: ", log.LstdFlags)
	a.logger.Printf("configuration initialised: catalogs=%d, mode=%s", len(settings.CatalogPaths), settings.TransposeMode)
	return nil
}

// loadCatalog returns the configured catalog files, or the built-in
// catalog when none are configured.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if len(a.settings.CatalogPaths) == 0 {
		return catalog.Default(), nil
	}
	return catalog.NewLoader(a.settings.LoadWorkers, a.logger).Load(ctx, a.settings.CatalogPaths...)
}

// transpose applies the configured modulo mode.
func (a *app) transpose(s model.Scale, semitones int) (model.Scale, error) {
	mode, err := a.settings.ToModuloMode()
	if err != nil {
		return model.Scale{}, err
	}
	return model.TransposeWith(s, semitones, mode)
}
