// Package errs provides the structured error envelope used across musicscales.
package errs

import (
	"strconv"
	"strings"
)

// Code identifies a failure category.
type Code string

const (
	// CodeNotFound indicates a missing scale.
	CodeNotFound Code = "not_found"
	// CodeNoteNotInAlphabet indicates a note label outside the chromatic alphabet.
	CodeNoteNotInAlphabet Code = "note_not_in_alphabet"
	// CodeInvalidSemitoneModulo indicates truncated modulo arithmetic left the pitch wheel.
	CodeInvalidSemitoneModulo Code = "invalid_semitone_modulo"
	// CodeInvalidScaleType indicates an unknown scale type tag.
	CodeInvalidScaleType Code = "invalid_scale_type"
	// CodeInvalidScale indicates a scale that violates its construction rules.
	CodeInvalidScale Code = "invalid_scale"
	// CodeInvalidCatalog indicates a catalog that could not be assembled.
	CodeInvalidCatalog Code = "invalid_catalog"
	// CodeUnsupportedFormat indicates an unknown or encode-only serialisation format.
	CodeUnsupportedFormat Code = "unsupported_format"
)

// Sentinels for errors.Is comparisons. Any *E with the same code matches.
var (
	ErrNotFound              = &E{Code: CodeNotFound}
	ErrNoteNotInAlphabet     = &E{Code: CodeNoteNotInAlphabet}
	ErrInvalidSemitoneModulo = &E{Code: CodeInvalidSemitoneModulo}
	ErrInvalidScaleType      = &E{Code: CodeInvalidScaleType}
	ErrInvalidScale          = &E{Code: CodeInvalidScale}
	ErrInvalidCatalog        = &E{Code: CodeInvalidCatalog}
	ErrUnsupportedFormat     = &E{Code: CodeUnsupportedFormat}
)

// E captures structured error information.
type E struct {
	Code    Code
	Message string
	// Field names the offending input, e.g. a note label or scale name.
	Field string

	cause error
}

// Option configures an error envelope.
type Option func(*E)

// New constructs an error envelope for the code.
func New(code Code, opts ...Option) *E {
	e := &E{Code: code}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithMessage attaches a human-readable message to the error.
func WithMessage(message string) Option {
	trimmed := strings.TrimSpace(message)
	return func(e *E) {
		e.Message = trimmed
	}
}

// WithField records the offending input value.
func WithField(field string) Option {
	return func(e *E) {
		e.Field = field
	}
}

// WithCause wraps an underlying error.
func WithCause(err error) Option {
	return func(e *E) {
		e.cause = err
	}
}

func (e *E) Error() string {
	if e == nil {
		return "<nil>"
	}
	code := strings.TrimSpace(string(e.Code))
	if code == "" {
		code = "unknown"
	}
	parts := []string{"code=" + code}
	if e.Field != "" {
		parts = append(parts, "field="+strconv.Quote(e.Field))
	}
	if e.Message != "" {
		parts = append(parts, "message="+strconv.Quote(e.Message))
	}
	if e.cause != nil {
		parts = append(parts, "cause="+strconv.Quote(e.cause.Error()))
	}
	return strings.Join(parts, " ")
}

func (e *E) Unwrap() error { return e.cause }

// Is reports whether target is an envelope with the same code.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the code from err, or "" when err carries no envelope.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*E); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
