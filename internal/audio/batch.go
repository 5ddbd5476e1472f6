package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/musicscales/internal/model"
)

// DefaultBatchWorkers is the number of files a Batch tags at once.
const DefaultBatchWorkers = 4

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a tagging progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Path    string
}

// BatchResult counts the outcome of one Batch run.
type BatchResult struct {
	Tagged int32
	Failed int32
}

// Batch tags many files with the same scale concurrently.
//
// A failing file is reported through the progress callback and counted;
// the remaining files are still tagged.
type Batch struct {
	tagger     *KeyTagger
	workers    int
	onProgress func(ProgressEvent)
}

// NewBatch creates a Batch. A workers value below 1 uses
// DefaultBatchWorkers; onProgress may be nil.
func NewBatch(tagger *KeyTagger, workers int, onProgress func(ProgressEvent)) *Batch {
	if tagger == nil {
		tagger = NewKeyTagger(nil)
	}
	if workers < 1 {
		workers = DefaultBatchWorkers
	}
	return &Batch{tagger: tagger, workers: workers, onProgress: onProgress}
}

// Run tags every path with scale.
//
// The returned error is non-nil only when ctx is cancelled; per-file
// failures are in BatchResult.Failed.
func (b *Batch) Run(ctx context.Context, paths []string, scale model.Scale) (BatchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	var tagged, failed int32
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.tagger.SaveKey(path, scale); err != nil {
				atomic.AddInt32(&failed, 1)
				b.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(path), err), Level: LevelError, Path: path})
				return nil // Continue with other files
			}
			atomic.AddInt32(&tagged, 1)
			b.progress(ProgressEvent{Message: fmt.Sprintf("Tagged %s with key %s", filepath.Base(path), scale.Key()), Level: LevelVerbose, Path: path})
			return nil
		})
	}

	err := g.Wait()
	res := BatchResult{Tagged: tagged, Failed: failed}
	if err != nil {
		return res, err
	}

	if int(res.Tagged) == len(paths) {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Tagged %d files with %s", res.Tagged, scale.Name()), Level: LevelSuccess})
	} else {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s, %d of %d files failed", scale.Name(), res.Failed, len(paths)), Level: LevelWarning})
	}
	return res, nil
}

func (b *Batch) progress(event ProgressEvent) {
	if b.onProgress != nil {
		b.onProgress(event)
	}
}
