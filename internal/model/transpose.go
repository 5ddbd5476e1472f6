package model

import (
	"fmt"
	"strings"

	"github.com/handiism/musicscales/internal/errs"
)

// ModuloMode selects the index arithmetic used by TransposeNotes.
type ModuloMode int

const (
	// ModuloFloored wraps into [0, 12) for every offset, negative included.
	ModuloFloored ModuloMode = iota

	// ModuloTruncated reproduces (index + semitones) % 12 with a truncating
	// remainder. Results below zero have no pitch class and are reported
	// as errs.ErrInvalidSemitoneModulo.
	ModuloTruncated
)

// ParseModuloMode resolves "floored" or "truncated" ("legacy" is accepted
// as an alias for truncated).
func ParseModuloMode(s string) (ModuloMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "floored":
		return ModuloFloored, nil
	case "truncated", "legacy":
		return ModuloTruncated, nil
	default:
		return 0, fmt.Errorf("unknown modulo mode %q", s)
	}
}

func (m ModuloMode) String() string {
	if m == ModuloTruncated {
		return "truncated"
	}
	return "floored"
}

// TransposeNotes shifts note labels by semitones.
//
// Unlike Scale.Transpose it accepts raw labels, so it can fail:
//   - a label outside the chromatic alphabet yields errs.ErrNoteNotInAlphabet
//   - in ModuloTruncated mode, an offset that lands below zero yields
//     errs.ErrInvalidSemitoneModulo
//
// Output position i always corresponds to input position i.
func TransposeNotes(notes []string, semitones int, mode ModuloMode) ([]string, error) {
	out := make([]string, len(notes))
	for i, label := range notes {
		pc, err := ParsePitchClass(label)
		if err != nil {
			return nil, fmt.Errorf("transpose note %d: %w", i, err)
		}

		idx, err := shiftIndex(int(pc), semitones, mode)
		if err != nil {
			return nil, fmt.Errorf("transpose note %d: %w", i, err)
		}
		out[i] = chromatic[idx]
	}
	return out, nil
}

func shiftIndex(idx, semitones int, mode ModuloMode) (int, error) {
	if mode != ModuloTruncated {
		return floorMod(idx+semitones, PitchClasses), nil
	}
	n := (idx + semitones) % PitchClasses
	if n < 0 {
		return 0, errs.New(errs.CodeInvalidSemitoneModulo,
			errs.WithField(chromatic[idx]),
			errs.WithMessage(fmt.Sprintf("(%d%+d) %% %d = %d has no pitch class", idx, semitones, PitchClasses, n)))
	}
	return n, nil
}

// TransposeWith transposes s using the given modulo mode.
//
// With ModuloFloored it is equivalent to s.Transpose and never fails.
func TransposeWith(s Scale, semitones int, mode ModuloMode) (Scale, error) {
	if mode == ModuloFloored {
		return s.Transpose(semitones), nil
	}
	notes, err := TransposeNotes(s.Notes(), semitones, mode)
	if err != nil {
		return Scale{}, fmt.Errorf("transpose %q by %d: %w", s.name, semitones, err)
	}
	if len(notes) == 0 {
		return s, nil
	}
	return Derive(s, WithNotes(notes...), WithName(transposedName(notes[0], s.typ)))
}
