package model

import "fmt"

// SourceError indicates the input stream could not be read at all.
// Nothing has been parsed when it is returned.
type SourceError struct {
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source not readable: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("source not readable: %s", e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// NewSourceError creates a new source error
func NewSourceError(message string, cause error) *SourceError {
	return &SourceError{Message: message, Cause: cause}
}

// ParseError represents a structural parsing failure with field context.
// Missing optional fields and unrecognized codes never produce a ParseError;
// only malformed input does.
type ParseError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(field, message string, cause error) *ParseError {
	return &ParseError{Field: field, Message: message, Cause: cause}
}
