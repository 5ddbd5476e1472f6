package catalog

import (
	"math"

	"github.com/handiism/musicscales/internal/model"
)

// Stats summarises a catalog.
type Stats struct {
	Total int
	// ByType has an entry for every ScaleType, zero when absent.
	ByType map[model.ScaleType]int
	// AverageNotes is the mean note count rounded half up; 0 for an empty catalog.
	AverageNotes int
}

// Stats computes counts over the catalog.
func (c *Catalog) Stats() Stats {
	st := Stats{
		Total:  c.Len(),
		ByType: make(map[model.ScaleType]int, len(model.ScaleTypes())),
	}
	for _, t := range model.ScaleTypes() {
		st.ByType[t] = 0
	}

	notes := 0
	for _, s := range c.Scales() {
		st.ByType[s.Type()]++
		notes += s.Len()
	}
	if st.Total > 0 {
		st.AverageNotes = int(math.Round(float64(notes) / float64(st.Total)))
	}
	return st
}
