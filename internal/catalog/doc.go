// Package catalog provides the scale catalog and its queries.
//
// # Queries
//
//	cat := catalog.Default()
//	blues := cat.ScalesByType(model.Blues)      // [A Blues]
//	s, ok := cat.ScaleByName("G Major")          // first exact match
//	d := s.Transpose(2)                          // A Major
//	stats := cat.Stats()                         // totals per type
//
// Absence is a value, not an error: ScalesByType returns an empty slice
// and ScaleByName returns false. Find wraps the lookup for callers that
// prefer errs.ErrNotFound.
//
// # Loading
//
// Catalog files in JSON, YAML or TOML are decoded concurrently and joined
// in argument order:
//
//	cat, err := catalog.LoadFiles(ctx, "base.yaml", "extra.toml")
//
// # Hot reload
//
// A Store publishes the current snapshot to concurrent readers, and a
// Watcher swaps in a fresh catalog whenever one of its files changes:
//
//	store := catalog.NewStore(cat)
//	w, err := catalog.NewWatcher(store, nil, logger, "base.yaml")
//	if err := w.Start(); err != nil { ... }
//	defer w.Stop()
//	for r := range w.Reloads { ... }
//
// A reload that fails leaves the previous snapshot in place.
package catalog
