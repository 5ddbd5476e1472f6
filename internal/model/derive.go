package model

import "fmt"

// draft is the mutable working copy a Derive call edits before it is
// validated into a new Scale.
type draft struct {
	name        string
	notes       []string
	typ         ScaleType
	description string
}

// Override changes one field of a draft during Derive.
type Override func(*draft)

// WithName replaces the name.
func WithName(name string) Override {
	return func(d *draft) { d.name = name }
}

// WithNotes replaces the whole note sequence.
func WithNotes(notes ...string) Override {
	return func(d *draft) { d.notes = append([]string(nil), notes...) }
}

// WithAppendedNotes adds notes after the existing ones.
func WithAppendedNotes(notes ...string) Override {
	return func(d *draft) { d.notes = append(d.notes, notes...) }
}

// WithType replaces the scale type.
func WithType(t ScaleType) Override {
	return func(d *draft) { d.typ = t }
}

// WithDescription replaces the description.
func WithDescription(description string) Override {
	return func(d *draft) { d.description = description }
}

// WithDefaultDescription sets the description to "<name> - <type> scale",
// using the name and type as they stand when the override is applied.
func WithDefaultDescription() Override {
	return func(d *draft) { d.description = fmt.Sprintf("%s - %s scale", d.name, d.typ) }
}

// Derive returns a copy of base with the overrides applied in order.
//
// The base is never modified. The result goes through the same validation
// as NewScale, so an override that introduces an unknown note fails.
//
// Example:
//
//	extended, err := model.Derive(base,
//	    model.WithName("Extended Scale"),
//	    model.WithAppendedNotes("F", "G"))
func Derive(base Scale, overrides ...Override) (Scale, error) {
	d := &draft{
		name:        base.name,
		notes:       base.Notes(),
		typ:         base.typ,
		description: base.description,
	}
	for _, o := range overrides {
		if o != nil {
			o(d)
		}
	}
	return NewScale(d.name, d.notes, d.typ, d.description)
}
