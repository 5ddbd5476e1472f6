// Package audio writes scale information into audio file metadata.
//
// # Key Tagging
//
// Use the KeyTagger to record a scale's key in an MP3's ID3v2 tag:
//
//	tagger := audio.NewKeyTagger(audio.DefaultTagConfig())
//	err := tagger.SaveKey("/music/song.mp3", cMajor.Transpose(2))
//
// The tagger writes:
//   - TKEY (Initial key), e.g. "D" or "F#m"
//   - COMM (Comment) with the scale name and notes, e.g.
//     "D Major: D E F# G A B C#"
//
// Read the key back with ReadKey.
//
// # Batches
//
// Batch tags many files concurrently and reports progress per file:
//
//	batch := audio.NewBatch(tagger, 4, func(e audio.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	res, err := batch.Run(ctx, paths, scale)
package audio
