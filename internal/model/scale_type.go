package model

import (
	"strings"

	"github.com/handiism/musicscales/internal/errs"
)

// ScaleType is the musical family of a scale.
//
// The set is closed: Major, Minor, Pentatonic and Blues are the only
// variants, and ParseScaleType rejects everything else.
type ScaleType uint8

const (
	// Major is the seven-note Ionian scale.
	Major ScaleType = iota

	// Minor is the natural (Aeolian) minor scale.
	Minor

	// Pentatonic is a five-note scale.
	Pentatonic

	// Blues is the six-note minor blues scale.
	Blues
)

// ScaleTypes returns every variant in declaration order.
func ScaleTypes() []ScaleType {
	return []ScaleType{Major, Minor, Pentatonic, Blues}
}

// ParseScaleType resolves a lowercase type tag such as "major".
func ParseScaleType(tag string) (ScaleType, error) {
	switch strings.TrimSpace(tag) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "pentatonic":
		return Pentatonic, nil
	case "blues":
		return Blues, nil
	default:
		return 0, errs.New(errs.CodeInvalidScaleType,
			errs.WithField(tag),
			errs.WithMessage("expected one of major, minor, pentatonic, blues"))
	}
}

// String returns the lowercase tag.
func (t ScaleType) String() string {
	switch t {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Pentatonic:
		return "pentatonic"
	case Blues:
		return "blues"
	default:
		return "unknown"
	}
}

// Title returns the tag with its first letter upper-cased ("Major").
func (t ScaleType) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether t is one of the four variants.
func (t ScaleType) Valid() bool {
	return t <= Blues
}

// Mode returns the tonal mode used for key notation: Major and Pentatonic
// are major, Minor and Blues are minor.
func (t ScaleType) Mode() ScaleType {
	switch t {
	case Minor, Blues:
		return Minor
	default:
		return Major
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ScaleType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errs.New(errs.CodeInvalidScaleType, errs.WithMessage("cannot marshal unknown scale type"))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ScaleType) UnmarshalText(text []byte) error {
	parsed, err := ParseScaleType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
