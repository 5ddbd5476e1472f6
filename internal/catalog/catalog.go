package catalog

import (
	"fmt"
	"slices"

	"github.com/handiism/musicscales/internal/errs"
	"github.com/handiism/musicscales/internal/model"
)

// Catalog is an ordered, immutable collection of scales.
//
// A Catalog never changes after New returns, so one value may be read
// from any number of goroutines without locking. Query methods return
// fresh slices; callers may keep or modify them.
//
// Names are not required to be unique. ScaleByName returns the first
// match in catalog order and Duplicates lists the names that repeat.
// A nil *Catalog behaves like an empty one.
type Catalog struct {
	scales []model.Scale
}

// Entry is a scale with its 1-based position and note count, as shown by
// listings.
type Entry struct {
	ID        int
	Scale     model.Scale
	NoteCount int
}

// New builds a catalog from scales in the given order.
//
// Every scale must come from a model constructor; a zero Scale is
// rejected with errs.ErrInvalidCatalog.
func New(scales ...model.Scale) (*Catalog, error) {
	for i, s := range scales {
		if s.Name() == "" || s.Len() == 0 {
			return nil, errs.New(errs.CodeInvalidCatalog,
				errs.WithField(fmt.Sprintf("scales[%d]", i)),
				errs.WithMessage("scale is not initialised"))
		}
	}
	return &Catalog{scales: slices.Clone(scales)}, nil
}

// MustNew is like New but panics on error. It is intended for seed data.
func MustNew(scales ...model.Scale) *Catalog {
	c, err := New(scales...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of scales.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.scales)
}

// Scales returns every scale in catalog order.
func (c *Catalog) Scales() []model.Scale {
	if c == nil {
		return []model.Scale{}
	}
	return slices.Clone(c.scales)
}

// ScalesByType returns the scales of type t in catalog order.
//
// The result is empty, never nil, when nothing matches.
func (c *Catalog) ScalesByType(t model.ScaleType) []model.Scale {
	return c.Filter(func(s model.Scale) bool { return s.Type() == t })
}

// ScalesByTypes concatenates the ScalesByType results for each type in
// argument order.
func (c *Catalog) ScalesByTypes(types ...model.ScaleType) []model.Scale {
	out := []model.Scale{}
	for _, t := range types {
		out = append(out, c.ScalesByType(t)...)
	}
	return out
}

// ScaleByName returns the first scale whose name equals name exactly.
// Matching is case-sensitive. The boolean is false when no scale matches.
func (c *Catalog) ScaleByName(name string) (model.Scale, bool) {
	if c == nil {
		return model.Scale{}, false
	}
	for _, s := range c.scales {
		if s.Name() == name {
			return s, true
		}
	}
	return model.Scale{}, false
}

// Find is ScaleByName for callers that want an error: a missing name is
// reported as errs.ErrNotFound.
func (c *Catalog) Find(name string) (model.Scale, error) {
	s, ok := c.ScaleByName(name)
	if !ok {
		return model.Scale{}, errs.New(errs.CodeNotFound,
			errs.WithField(name),
			errs.WithMessage("no scale with this name"))
	}
	return s, nil
}

// Filter returns the scales for which keep returns true, in catalog order.
func (c *Catalog) Filter(keep func(model.Scale) bool) []model.Scale {
	out := []model.Scale{}
	if c == nil {
		return out
	}
	for _, s := range c.scales {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// MoreNotesThan returns the scales with strictly more than n notes.
func (c *Catalog) MoreNotesThan(n int) []model.Scale {
	return c.Filter(func(s model.Scale) bool { return s.Len() > n })
}

// Types returns the distinct scale types present, in order of first
// appearance.
func (c *Catalog) Types() []model.ScaleType {
	out := []model.ScaleType{}
	if c == nil {
		return out
	}
	for _, s := range c.scales {
		if !slices.Contains(out, s.Type()) {
			out = append(out, s.Type())
		}
	}
	return out
}

// Entries numbers the scales from 1 in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for i, s := range c.Scales() {
		out = append(out, Entry{ID: i + 1, Scale: s, NoteCount: s.Len()})
	}
	return out
}

// Duplicates returns the names that occur more than once, each listed
// once in order of first appearance.
func (c *Catalog) Duplicates() []string {
	seen := make(map[string]int)
	var out []string
	for _, s := range c.Scales() {
		seen[s.Name()]++
		if seen[s.Name()] == 2 {
			out = append(out, s.Name())
		}
	}
	return out
}

// Merge returns a new catalog holding c's scales followed by those of
// each other catalog in argument order.
func (c *Catalog) Merge(others ...*Catalog) *Catalog {
	merged := c.Scales()
	for _, o := range others {
		merged = append(merged, o.Scales()...)
	}
	return &Catalog{scales: merged}
}
