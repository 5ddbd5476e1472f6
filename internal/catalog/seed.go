package catalog

import "github.com/handiism/musicscales/internal/model"

var defaultCatalog = MustNew(
	model.MustScale("C Major",
		[]string{"C", "D", "E", "F", "G", "A", "B"},
		model.Major, "The most common major scale, starting on C"),
	model.MustScale("A Minor",
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		model.Minor, "Natural minor scale, relative minor of C Major"),
	model.MustScale("C Pentatonic Major",
		[]string{"C", "D", "E", "G", "A"},
		model.Pentatonic, "Five-note scale commonly used in folk and rock music"),
	model.MustScale("A Blues",
		[]string{"A", "C", "D", "D#", "E", "G"},
		model.Blues, "Six-note scale with characteristic blues sound"),
	model.MustScale("G Major",
		[]string{"G", "A", "B", "C", "D", "E", "F#"},
		model.Major, "Major scale with one sharp (F#)"),
	model.MustScale("E Minor",
		[]string{"E", "F#", "G", "A", "B", "C", "D"},
		model.Minor, "Natural minor scale, relative minor of G Major"),
)

// Default returns the built-in six-scale catalog.
//
// The same value is returned on every call; it is safe to share.
func Default() *Catalog {
	return defaultCatalog
}
