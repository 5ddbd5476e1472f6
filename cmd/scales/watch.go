package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/musicscales/internal/catalog"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload catalog files as they change and report each reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.settings.CatalogPaths) == 0 {
				return errors.New("watch needs at least one --catalog file")
			}

			ctx := cmd.Context()
			cat, err := a.loadCatalog(ctx)
			if err != nil {
				return err
			}
			store := catalog.NewStore(cat)

			loader := catalog.NewLoader(a.settings.LoadWorkers, a.logger)
			w, err := catalog.NewWatcher(store, loader, a.logger, a.settings.CatalogPaths...)
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %d catalog files (%d scales)\n", len(a.settings.CatalogPaths), cat.Len())
			for {
				select {
				case <-ctx.Done():
					return nil
				case r := <-w.Reloads:
					if r.Err != nil {
						fmt.Fprintf(out, "%s: reload failed, keeping %d scales: %v\n", r.File, store.Load().Len(), r.Err)
						continue
					}
					st := r.Catalog.Stats()
					fmt.Fprintf(out, "%s: reloaded %d scales (avg %d notes)\n", r.File, st.Total, st.AverageNotes)
				}
			}
		},
	}
}
