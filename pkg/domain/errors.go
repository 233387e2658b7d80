package domain

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when the input ends before a required line.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrInvalidNumber is returned when a numeric field cannot be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// ErrMissingKey is returned when a line does not start with the expected key.
var ErrMissingKey = errors.New("missing key")

// ErrInvalidGeneratorsHeader is returned when the generators header is malformed.
var ErrInvalidGeneratorsHeader = errors.New("invalid generators header")

// ParseError describes why a definition file was rejected.
// Use errors.Is against the Err* sentinels to classify it.
type ParseError struct {
	Kind  error  // One of the Err* sentinels
	Field string // Field being parsed (n, d, depth, prefix, postfix, generators)
	Line  int    // 1-based source line, 0 when the input ran out
	Value string // Offending line content, comment stripped
	Err   error  // Underlying cause, e.g. a strconv error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("field %q: %s", e.Field, e.Kind)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (got %q)", e.Value)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
