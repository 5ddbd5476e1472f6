package model

import (
	"github.com/handiism/musicscales/internal/errs"
)

// PitchClass is a position on the 12-tone pitch wheel, 0 (C) through 11 (B).
type PitchClass uint8

// PitchClasses is the size of the chromatic alphabet.
const PitchClasses = 12

// chromatic holds the alphabet labels indexed by PitchClass.
// It is never written after package initialisation.
var chromatic = [PitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Chromatic returns the 12 pitch class labels in ascending order.
//
// The returned slice is a fresh copy; callers may modify it freely.
func Chromatic() []string {
	out := make([]string, PitchClasses)
	copy(out, chromatic[:])
	return out
}

// ParsePitchClass finds a label in the chromatic alphabet.
//
// Matching is exact and case-sensitive. Flats and enharmonic spellings
// ("Db", "E#") are not in the alphabet and fail with errs.ErrNoteNotInAlphabet.
func ParsePitchClass(label string) (PitchClass, error) {
	for i, l := range chromatic {
		if l == label {
			return PitchClass(i), nil
		}
	}
	return 0, errs.New(errs.CodeNoteNotInAlphabet,
		errs.WithField(label),
		errs.WithMessage("note is not in the chromatic alphabet"))
}

// String returns the alphabet label.
func (p PitchClass) String() string {
	return chromatic[p%PitchClasses]
}

// Shift moves p around the wheel by semitones using floored modulo,
// so negative offsets mirror positive ones.
func (p PitchClass) Shift(semitones int) PitchClass {
	return PitchClass(floorMod(int(p)+semitones, PitchClasses))
}

// floorMod returns a mod n in [0, n).
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
