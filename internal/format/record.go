package format

import (
	"fmt"

	"github.com/handiism/musicscales/internal/model"
)

// scaleRecord is the on-disk shape of one scale.
type scaleRecord struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Notes       []string `json:"notes" yaml:"notes" toml:"notes"`
	Type        string   `json:"type" yaml:"type" toml:"type"`
	Description string   `json:"description" yaml:"description" toml:"description"`
}

// catalogRecord is the document root shared by every decodable format.
type catalogRecord struct {
	Scales []scaleRecord `json:"scales" yaml:"scales" toml:"scales"`
}

func fromScale(s model.Scale) scaleRecord {
	return scaleRecord{
		Name:        s.Name(),
		Notes:       s.Notes(),
		Type:        s.Type().String(),
		Description: s.Description(),
	}
}

// toScale converts the record, validating it through model.NewScale.
func (r scaleRecord) toScale() (model.Scale, error) {
	typ, err := model.ParseScaleType(r.Type)
	if err != nil {
		return model.Scale{}, fmt.Errorf("scale %q: %w", r.Name, err)
	}
	return model.NewScale(r.Name, r.Notes, typ, r.Description)
}

func newCatalogRecord(scales []model.Scale) catalogRecord {
	rec := catalogRecord{Scales: make([]scaleRecord, 0, len(scales))}
	for _, s := range scales {
		rec.Scales = append(rec.Scales, fromScale(s))
	}
	return rec
}

func (c catalogRecord) toScales() ([]model.Scale, error) {
	out := make([]model.Scale, 0, len(c.Scales))
	for i, r := range c.Scales {
		s, err := r.toScale()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
