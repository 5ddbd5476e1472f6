package format

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/handiism/musicscales/internal/errs"
	"github.com/handiism/musicscales/internal/model"
)

// Encoder renders scale lists in one format.
//
// Example:
//
//	enc := NewEncoder(FormatText)
//	data, _ := enc.Encode(cat.Scales())
//
//	// Result:
//	// C Major [major]
//	//   C - D - E - F - G - A - B
//	//   The most common major scale, starting on C
type Encoder struct {
	format Format
}

// NewEncoder creates an Encoder for the format.
func NewEncoder(f Format) *Encoder {
	return &Encoder{format: f}
}

// Format returns the encoder's format.
func (e *Encoder) Format() Format { return e.format }

// Encode renders scales in catalog order.
func (e *Encoder) Encode(scales []model.Scale) ([]byte, error) {
	switch e.format {
	case FormatJSON:
		return e.encodeJSON(scales)
	case FormatYAML:
		return e.encodeYAML(scales)
	case FormatTOML:
		return e.encodeTOML(scales)
	case FormatText:
		return e.encodeText(scales), nil
	default:
		return nil, errs.New(errs.CodeUnsupportedFormat, errs.WithField(e.format.String()))
	}
}

func (e *Encoder) encodeJSON(scales []model.Scale) ([]byte, error) {
	data, err := json.MarshalIndent(newCatalogRecord(scales), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

func (e *Encoder) encodeYAML(scales []model.Scale) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newCatalogRecord(scales)); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Encoder) encodeTOML(scales []model.Scale) ([]byte, error) {
	data, err := toml.Marshal(newCatalogRecord(scales))
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return data, nil
}

// encodeText renders one block per scale:
//
//	<name> [<type>]
//	  <note> - <note> - ...
//	  <description>
func (e *Encoder) encodeText(scales []model.Scale) []byte {
	var sb strings.Builder
	for i, s := range scales {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s [%s]\n", s.Name(), s.Type()))
		sb.WriteString("  " + strings.Join(s.Notes(), " - ") + "\n")
		if s.Description() != "" {
			sb.WriteString("  " + s.Description() + "\n")
		}
	}
	return []byte(sb.String())
}

// Decode parses a catalog document.
//
// FormatText is rejected with errs.ErrUnsupportedFormat.
func Decode(f Format, data []byte) ([]model.Scale, error) {
	var rec catalogRecord
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, errs.New(errs.CodeUnsupportedFormat,
			errs.WithField(f.String()),
			errs.WithMessage("format cannot be decoded"))
	}
	return rec.toScales()
}
