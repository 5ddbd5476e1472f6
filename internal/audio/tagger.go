package audio

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"

	"github.com/handiism/musicscales/internal/model"
)

const (
	frameKey = "TKEY"

	commentLanguage    = "eng"
	commentDescription = "scale"
)

// TagEditAction defines how to handle individual ID3 frames.
type TagEditAction int

const (
	// TagEmpty removes the frame.
	TagEmpty TagEditAction = iota

	// TagModify writes the frame from the scale.
	TagModify

	// TagDoNotModify leaves the existing frame unchanged.
	TagDoNotModify
)

// TagConfig holds the action for each frame the tagger manages.
//
// Example:
//
//	cfg := &TagConfig{
//	    Key:     TagModify,      // Write TKEY from the scale
//	    Comment: TagDoNotModify, // Keep any existing scale comment
//	}
type TagConfig struct {
	// Key controls the TKEY (Initial key) frame.
	Key TagEditAction

	// Comment controls the COMM (Comments) frame with description "scale".
	Comment TagEditAction
}

// DefaultTagConfig returns the default tag configuration: both frames
// are written.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Key:     TagModify,
		Comment: TagModify,
	}
}

// KeyTagger writes scale keys to MP3 files.
//
// Example:
//
//	tagger := NewKeyTagger(DefaultTagConfig())
//	if err := tagger.SaveKey(path, scale); err != nil {
//	    log.Printf("Failed to tag %s: %v", path, err)
//	}
type KeyTagger struct {
	config *TagConfig
}

// NewKeyTagger creates a new KeyTagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewKeyTagger(config *TagConfig) *KeyTagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &KeyTagger{config: config}
}

// SaveKey writes the scale's key to the file at path.
//
// The file must exist. A file without an ID3v2 tag gets a new one;
// the audio data is preserved.
func (t *KeyTagger) SaveKey(path string, scale model.Scale) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	switch t.config.Key {
	case TagEmpty:
		tag.DeleteFrames(frameKey)
	case TagModify:
		tag.DeleteFrames(frameKey)
		tag.AddTextFrame(frameKey, id3v2.EncodingUTF8, scale.Key())
	}

	switch t.config.Comment {
	case TagEmpty:
		t.deleteScaleComments(tag)
	case TagModify:
		t.deleteScaleComments(tag)
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    commentLanguage,
			Description: commentDescription,
			Text:        ScaleComment(scale),
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag %s: %w", path, err)
	}
	return nil
}

// deleteScaleComments removes the comment frames this tagger owns and
// keeps any other comments.
func (t *KeyTagger) deleteScaleComments(tag *id3v2.Tag) {
	id := tag.CommonID("Comments")
	var keep []id3v2.CommentFrame
	for _, f := range tag.GetFrames(id) {
		cf, ok := f.(id3v2.CommentFrame)
		if !ok || cf.Description == commentDescription {
			continue
		}
		keep = append(keep, cf)
	}
	tag.DeleteFrames(id)
	for _, cf := range keep {
		tag.AddCommentFrame(cf)
	}
}

// ScaleComment renders "<name>: <notes separated by spaces>".
func ScaleComment(scale model.Scale) string {
	return scale.Name() + ": " + strings.Join(scale.Notes(), " ")
}

// ReadKey returns the TKEY frame of the file, or "" when it has none.
func ReadKey(path string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	return tag.GetTextFrame(frameKey).Text, nil
}

// ReadScaleComment returns the scale comment written by SaveKey, or ""
// when the file has none.
func ReadScaleComment(path string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		if cf, ok := f.(id3v2.CommentFrame); ok && cf.Description == commentDescription {
			return cf.Text, nil
		}
	}
	return "", nil
}
