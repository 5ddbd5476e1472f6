// Package format serialises scale lists to and from catalog files.
//
// # Formats
//
//   - JSON (.json)
//   - YAML (.yaml, .yml)
//   - TOML (.toml)
//   - Text (.txt), a human-readable listing that can only be encoded
//
// Every decodable format shares one document shape:
//
//	scales:
//	  - name: C Major
//	    notes: [C, D, E, F, G, A, B]
//	    type: major
//	    description: The most common major scale, starting on C
//
// # Encoding
//
//	enc := format.NewEncoder(format.FormatYAML)
//	data, err := enc.Encode(cat.Scales())
//
// # Decoding
//
//	f, err := format.FromPath("scales.toml")
//	scales, err := format.Decode(f, data)
//
// Decoded scales go through model.NewScale, so a file with an unknown
// note or type fails as a whole.
package format
