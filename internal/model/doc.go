// Package model defines the value types of the musicscales catalog.
//
// # Pitch classes
//
// The chromatic alphabet is the fixed sequence
// C, C#, D, D#, E, F, F#, G, G#, A, A#, B. A PitchClass is an index into it:
//
//	pc, err := model.ParsePitchClass("F#") // 6
//	pc.Shift(-7).String()                  // "B"
//
// # Scale
//
// Scale is an immutable value with a name, an ordered note sequence, a
// ScaleType and a description:
//
//	cMajor := model.MustScale("C Major",
//	    []string{"C", "D", "E", "F", "G", "A", "B"}, model.Major, "...")
//	d := cMajor.Transpose(2)
//	fmt.Println(d.Name(), d.Notes()) // D Major [D E F# G A B C#]
//
// # Copy with override
//
// Derive builds a new Scale from a base and a list of overrides; the base
// is left untouched:
//
//	custom, err := model.Derive(cMajor,
//	    model.WithName("C Major Add9"),
//	    model.WithAppendedNotes("D"))
//
// # Modulo modes
//
// Scale.Transpose always uses floored modulo. TransposeWith and
// TransposeNotes also accept ModuloTruncated, which reproduces a
// truncating remainder and reports offsets that leave the wheel.
package model
