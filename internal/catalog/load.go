package catalog

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/musicscales/internal/errs"
	"github.com/handiism/musicscales/internal/format"
	"github.com/handiism/musicscales/internal/http"
	ioutils "github.com/handiism/musicscales/internal/io"
	"github.com/handiism/musicscales/internal/model"
)

// DefaultConcurrency bounds how many catalog files a Loader decodes at once.
const DefaultConcurrency = 4

// Loader reads catalog files and http(s) catalog URLs into a Catalog.
type Loader struct {
	concurrency int
	logger      *log.Logger
	client      *http.Client
}

// NewLoader creates a Loader. A nil logger discards output; a
// concurrency below 1 uses DefaultConcurrency.
func NewLoader(concurrency int, logger *log.Logger) *Loader {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loader{concurrency: concurrency, logger: logger, client: http.NewClient()}
}

// Load decodes every path and concatenates the scales in argument order,
// whatever order the files finish decoding in.
//
// The format of each file is taken from its extension; for a URL, from
// the extension of its path. Loading fails as
// a whole on the first bad file: unknown extension, unreadable file, an
// invalid scale, or a file with no scales at all. Duplicate names across
// files are logged, not rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, errs.New(errs.CodeInvalidCatalog, errs.WithMessage("no catalog files given"))
	}

	results := make([][]model.Scale, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			scales, err := l.loadFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = scales
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Scale
	for _, scales := range results {
		all = append(all, scales...)
	}

	cat, err := New(all...)
	if err != nil {
		return nil, err
	}
	for _, name := range cat.Duplicates() {
		l.logger.Printf("duplicate scale name %q: lookups return the first occurrence", name)
	}
	return cat, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) ([]model.Scale, error) {
	name := path
	if http.IsURL(path) {
		name = http.URLPath(path)
	}
	f, err := format.FromPath(name)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	var data []byte
	if http.IsURL(path) {
		data, err = l.client.Get(ctx, path)
	} else {
		data, err = ioutils.ReadFile(ctx, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	scales, err := format.Decode(f, data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	if len(scales) == 0 {
		return nil, errs.New(errs.CodeInvalidCatalog,
			errs.WithField(path),
			errs.WithMessage("catalog file has no scales"))
	}
	l.logger.Printf("loaded %d scales from %s", len(scales), path)
	return scales, nil
}

// LoadFiles is Load with a default Loader.
func LoadFiles(ctx context.Context, paths ...string) (*Catalog, error) {
	return NewLoader(DefaultConcurrency, nil).Load(ctx, paths...)
}
