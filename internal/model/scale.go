package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/handiism/musicscales/internal/errs"
)

// Scale represents a named musical scale.
//
// Scale is an immutable value: fields are unexported and every accessor
// returns a copy, so a Scale handed to another goroutine or a caller can
// never change underneath its owner. New values are produced with
// NewScale, Derive or one of the transpose functions.
//
// Every Scale built through those constructors satisfies:
//   - the name is non-empty
//   - there is at least one note
//   - every note is a member of the chromatic alphabet
//   - the type is one of the four ScaleType variants
type Scale struct {
	name        string
	notes       []PitchClass
	typ         ScaleType
	description string
}

// NewScale validates the inputs and builds a Scale.
//
// Notes keep their given order. Validation fails fast: the first note
// outside the chromatic alphabet is reported as errs.ErrNoteNotInAlphabet,
// any other violation as errs.ErrInvalidScale.
//
// Example:
//
//	cMajor, err := model.NewScale("C Major",
//	    []string{"C", "D", "E", "F", "G", "A", "B"},
//	    model.Major, "The most common major scale, starting on C")
func NewScale(name string, notes []string, typ ScaleType, description string) (Scale, error) {
	if strings.TrimSpace(name) == "" {
		return Scale{}, errs.New(errs.CodeInvalidScale, errs.WithMessage("scale name is empty"))
	}
	if len(notes) == 0 {
		return Scale{}, errs.New(errs.CodeInvalidScale,
			errs.WithField(name),
			errs.WithMessage("scale has no notes"))
	}
	if !typ.Valid() {
		return Scale{}, errs.New(errs.CodeInvalidScaleType,
			errs.WithField(name),
			errs.WithMessage(fmt.Sprintf("scale type %d is not a known variant", typ)))
	}

	pcs := make([]PitchClass, len(notes))
	for i, label := range notes {
		pc, err := ParsePitchClass(label)
		if err != nil {
			return Scale{}, fmt.Errorf("scale %q note %d: %w", name, i, err)
		}
		pcs[i] = pc
	}

	return Scale{
		name:        name,
		notes:       pcs,
		typ:         typ,
		description: description,
	}, nil
}

// MustScale is like NewScale but panics on invalid input.
// It is intended for static seed data.
func MustScale(name string, notes []string, typ ScaleType, description string) Scale {
	s, err := NewScale(name, notes, typ, description)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the scale name.
func (s Scale) Name() string { return s.name }

// Type returns the scale type.
func (s Scale) Type() ScaleType { return s.typ }

// Description returns the free-text description.
func (s Scale) Description() string { return s.description }

// Len returns the number of notes.
func (s Scale) Len() int { return len(s.notes) }

// Notes returns a copy of the note labels in scale order.
func (s Scale) Notes() []string {
	out := make([]string, len(s.notes))
	for i, pc := range s.notes {
		out[i] = pc.String()
	}
	return out
}

// Pitches returns a copy of the notes as pitch classes.
func (s Scale) Pitches() []PitchClass {
	return slices.Clone(s.notes)
}

// Tonic returns the first note of the scale.
func (s Scale) Tonic() PitchClass {
	if len(s.notes) == 0 {
		return 0
	}
	return s.notes[0]
}

// Key renders the scale's key in ID3 "initial key" notation: the tonic,
// followed by "m" for minor-mode scales ("D", "F#m").
func (s Scale) Key() string {
	if s.typ.Mode() == Minor {
		return s.Tonic().String() + "m"
	}
	return s.Tonic().String()
}

// Equal reports whether both scales carry the same fields.
func (s Scale) Equal(other Scale) bool {
	return s.name == other.name &&
		s.typ == other.typ &&
		s.description == other.description &&
		slices.Equal(s.notes, other.notes)
}

// String returns the scale name.
func (s Scale) String() string { return s.name }

// Transpose shifts every note by semitones around the pitch wheel.
//
// The offset may be any integer; floored modulo is used, so Transpose(-1)
// mirrors Transpose(1) and Transpose(12) returns the original notes.
// The result keeps the type and description, and is renamed to
// "<first transposed note> <Title(type)>":
//
//	d := cMajor.Transpose(2)
//	// d.Name()  == "D Major"
//	// d.Notes() == [D E F# G A B C#]
//
// The receiver is not modified.
func (s Scale) Transpose(semitones int) Scale {
	if len(s.notes) == 0 {
		return s
	}
	shifted := make([]PitchClass, len(s.notes))
	for i, pc := range s.notes {
		shifted[i] = pc.Shift(semitones)
	}

	out := s
	out.notes = shifted
	out.name = transposedName(shifted[0].String(), s.typ)
	return out
}

func transposedName(first string, typ ScaleType) string {
	return first + " " + typ.Title()
}
