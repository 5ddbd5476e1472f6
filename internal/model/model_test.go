package model

import (
	"errors"
	"slices"
	"testing"

	"github.com/handiism/musicscales/internal/errs"
)

func cMajor(t *testing.T) Scale {
	t.Helper()
	s, err := NewScale("C Major", []string{"C", "D", "E", "F", "G", "A", "B"}, Major, "The most common major scale, starting on C")
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	return s
}

func TestParsePitchClass(t *testing.T) {
	tests := []struct {
		label   string
		want    PitchClass
		wantErr bool
	}{
		{"C", 0, false},
		{"C#", 1, false},
		{"F#", 6, false},
		{"B", 11, false},
		{"Db", 0, true},
		{"c", 0, true},
		{"H", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParsePitchClass(tt.label)
			if tt.wantErr {
				if !errors.Is(err, errs.ErrNoteNotInAlphabet) {
					t.Fatalf("ParsePitchClass(%q) error = %v, want note_not_in_alphabet", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePitchClass(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParsePitchClass(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestChromaticIsACopy(t *testing.T) {
	c := Chromatic()
	c[0] = "X"
	if Chromatic()[0] != "C" {
		t.Fatal("mutating the returned alphabet must not affect the package alphabet")
	}
	if len(c) != 12 {
		t.Fatalf("alphabet length = %d, want 12", len(c))
	}
}

func TestPitchClass_Shift(t *testing.T) {
	tests := []struct {
		from      string
		semitones int
		want      string
	}{
		{"C", 1, "C#"},
		{"C", -1, "B"},
		{"B", 1, "C"},
		{"A", 12, "A"},
		{"A", -12, "A"},
		{"E", -25, "D#"},
		{"F#", 30, "C"},
	}
	for _, tt := range tests {
		pc, _ := ParsePitchClass(tt.from)
		if got := pc.Shift(tt.semitones).String(); got != tt.want {
			t.Errorf("%s.Shift(%d) = %s, want %s", tt.from, tt.semitones, got, tt.want)
		}
	}
}

func TestScaleType_ParseAndTitle(t *testing.T) {
	for _, st := range ScaleTypes() {
		parsed, err := ParseScaleType(st.String())
		if err != nil {
			t.Fatalf("ParseScaleType(%q): %v", st, err)
		}
		if parsed != st {
			t.Errorf("ParseScaleType(%q) = %v", st, parsed)
		}
	}

	if Pentatonic.Title() != "Pentatonic" {
		t.Errorf("Title() = %q", Pentatonic.Title())
	}

	if _, err := ParseScaleType("Major"); !errors.Is(err, errs.ErrInvalidScaleType) {
		t.Errorf("tags are case-sensitive, got err %v", err)
	}
	if _, err := ParseScaleType("dorian"); !errors.Is(err, errs.ErrInvalidScaleType) {
		t.Errorf("expected invalid_scale_type, got %v", err)
	}
}

func TestScaleType_TextRoundTrip(t *testing.T) {
	var st ScaleType
	if err := st.UnmarshalText([]byte("blues")); err != nil {
		t.Fatal(err)
	}
	text, err := st.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "blues" {
		t.Errorf("MarshalText() = %q", text)
	}
	if _, err := ScaleType(9).MarshalText(); err == nil {
		t.Error("expected error marshalling an unknown variant")
	}
}

func TestNewScale_Validation(t *testing.T) {
	tests := []struct {
		name  string
		sname string
		notes []string
		typ   ScaleType
		want  error
	}{
		{"empty name", " ", []string{"C"}, Major, errs.ErrInvalidScale},
		{"no notes", "Empty", nil, Major, errs.ErrInvalidScale},
		{"unknown type", "Odd", []string{"C"}, ScaleType(7), errs.ErrInvalidScaleType},
		{"flat spelling", "Bb Major", []string{"Bb", "C"}, Major, errs.ErrNoteNotInAlphabet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScale(tt.sname, tt.notes, tt.typ, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("NewScale() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScale_AccessorsReturnCopies(t *testing.T) {
	s := cMajor(t)
	notes := s.Notes()
	notes[0] = "B"
	pitches := s.Pitches()
	pitches[1] = 11

	if s.Notes()[0] != "C" || s.Pitches()[1] != 2 {
		t.Fatal("scale was mutated through an accessor")
	}
}

func TestScale_Transpose_ConcreteScenario(t *testing.T) {
	s := cMajor(t)
	d := s.Transpose(2)

	want := []string{"D", "E", "F#", "G", "A", "B", "C#"}
	if !slices.Equal(d.Notes(), want) {
		t.Errorf("Notes() = %v, want %v", d.Notes(), want)
	}
	if d.Name() != "D Major" {
		t.Errorf("Name() = %q, want %q", d.Name(), "D Major")
	}
	if d.Type() != Major || d.Description() != s.Description() {
		t.Error("type and description must be preserved")
	}

	// Input untouched.
	if s.Name() != "C Major" || s.Notes()[0] != "C" {
		t.Error("Transpose modified its receiver")
	}
}

func TestScale_Transpose_FullCycle(t *testing.T) {
	s := cMajor(t)
	for _, k := range []int{12, -12, 24, 0} {
		if got := s.Transpose(k).Notes(); !slices.Equal(got, s.Notes()) {
			t.Errorf("Transpose(%d) = %v, want %v", k, got, s.Notes())
		}
	}
}

func TestScale_Transpose_LengthAndPositions(t *testing.T) {
	s := cMajor(t)
	for k := -30; k <= 30; k++ {
		out := s.Transpose(k)
		if out.Len() != s.Len() {
			t.Fatalf("Transpose(%d) changed length to %d", k, out.Len())
		}
		in := s.Pitches()
		for i, pc := range out.Pitches() {
			if pc != in[i].Shift(k) {
				t.Fatalf("Transpose(%d) position %d = %s, want %s", k, i, pc, in[i].Shift(k))
			}
		}
	}
}

func TestScale_Transpose_Additive(t *testing.T) {
	s := cMajor(t)
	for a := -14; a <= 14; a++ {
		for b := -14; b <= 14; b++ {
			got := s.Transpose(a).Transpose(b).Notes()
			want := s.Transpose(a + b).Notes()
			if !slices.Equal(got, want) {
				t.Fatalf("Transpose(%d).Transpose(%d) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestScale_Transpose_NegativeMirrorsPositive(t *testing.T) {
	s := cMajor(t)
	down := s.Transpose(-1)
	if down.Name() != "B Major" {
		t.Errorf("Name() = %q, want B Major", down.Name())
	}
	if !slices.Equal(down.Transpose(1).Notes(), s.Notes()) {
		t.Error("Transpose(-1) then Transpose(1) should return to the start")
	}
}

func TestTransposeWith_Truncated(t *testing.T) {
	s := cMajor(t)

	// Non-negative results agree with the floored arithmetic.
	got, err := TransposeWith(s, 2, ModuloTruncated)
	if err != nil {
		t.Fatalf("TransposeWith: %v", err)
	}
	if !got.Equal(s.Transpose(2)) {
		t.Errorf("truncated +2 = %v %v, want %v", got.Name(), got.Notes(), s.Transpose(2).Notes())
	}

	// C (index 0) minus one leaves the wheel.
	if _, err := TransposeWith(s, -1, ModuloTruncated); !errors.Is(err, errs.ErrInvalidSemitoneModulo) {
		t.Errorf("expected invalid_semitone_modulo, got %v", err)
	}

	floored, err := TransposeWith(s, -1, ModuloFloored)
	if err != nil {
		t.Fatalf("floored mode must not fail: %v", err)
	}
	if floored.Name() != "B Major" {
		t.Errorf("floored -1 name = %q", floored.Name())
	}
}

func TestTransposeNotes(t *testing.T) {
	tests := []struct {
		name    string
		notes   []string
		k       int
		mode    ModuloMode
		want    []string
		wantErr error
	}{
		{"floored down", []string{"E", "C"}, -3, ModuloFloored, []string{"C#", "A"}, nil},
		{"truncated down ok", []string{"E", "G"}, -3, ModuloTruncated, []string{"C#", "E"}, nil},
		{"truncated below zero", []string{"E", "C"}, -3, ModuloTruncated, nil, errs.ErrInvalidSemitoneModulo},
		{"unknown note", []string{"C", "Cb"}, 1, ModuloFloored, nil, errs.ErrNoteNotInAlphabet},
		{"empty", nil, 5, ModuloFloored, []string{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransposeNotes(tt.notes, tt.k, tt.mode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("TransposeNotes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseModuloMode(t *testing.T) {
	tests := map[string]ModuloMode{
		"":          ModuloFloored,
		"floored":   ModuloFloored,
		"Truncated": ModuloTruncated,
		"legacy":    ModuloTruncated,
	}
	for in, want := range tests {
		got, err := ParseModuloMode(in)
		if err != nil || got != want {
			t.Errorf("ParseModuloMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseModuloMode("euclid"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDerive(t *testing.T) {
	base := MustScale("Base Scale", []string{"C", "D", "E"}, Major, "Base description")

	extended, err := Derive(base, WithName("Extended Scale"), WithAppendedNotes("F", "G"))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if extended.Name() != "Extended Scale" {
		t.Errorf("Name() = %q", extended.Name())
	}
	if !slices.Equal(extended.Notes(), []string{"C", "D", "E", "F", "G"}) {
		t.Errorf("Notes() = %v", extended.Notes())
	}
	if extended.Description() != "Base description" {
		t.Errorf("Description() = %q", extended.Description())
	}
	if base.Len() != 3 || base.Name() != "Base Scale" {
		t.Error("Derive modified the base scale")
	}

	described, err := Derive(base, WithType(Minor), WithDefaultDescription())
	if err != nil {
		t.Fatal(err)
	}
	if described.Description() != "Base Scale - minor scale" {
		t.Errorf("Description() = %q", described.Description())
	}

	if _, err := Derive(base, WithAppendedNotes("Fb")); !errors.Is(err, errs.ErrNoteNotInAlphabet) {
		t.Errorf("expected note_not_in_alphabet, got %v", err)
	}
}

func TestScale_Key(t *testing.T) {
	tests := []struct {
		scale Scale
		want  string
	}{
		{MustScale("C Major", []string{"C", "D"}, Major, ""), "C"},
		{MustScale("E Minor", []string{"E", "F#"}, Minor, ""), "Em"},
		{MustScale("C Pentatonic Major", []string{"C", "D"}, Pentatonic, ""), "C"},
		{MustScale("A Blues", []string{"A", "C"}, Blues, ""), "Am"},
		{MustScale("F# Minor", []string{"F#", "G#"}, Minor, ""), "F#m"},
	}
	for _, tt := range tests {
		if got := tt.scale.Key(); got != tt.want {
			t.Errorf("%s.Key() = %q, want %q", tt.scale.Name(), got, tt.want)
		}
	}
}
