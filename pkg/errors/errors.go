package errors

import (
	"fmt"
)

// ParseError represents a configuration file that could not be decoded.
type ParseError struct {
	Path   string
	Format string
	Line   int
	Err    error
}

// NewParseError constructs a ParseError for the given file and format.
func NewParseError(path, format string, line int, err error) error {
	return &ParseError{Path: path, Format: format, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}

	prefix := "parse error"
	if e.Format != "" {
		prefix = fmt.Sprintf("%s parse error", e.Format)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", prefix, e.Path, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Path, msg)
}

// Unwrap exposes the underlying decoder error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a configuration value that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WatchError reports a failure to follow a file for changes.
type WatchError struct {
	Path string
	Op   string
	Err  error
}

// NewWatchError constructs a WatchError for the failed operation.
func NewWatchError(path, op string, err error) error {
	return &WatchError{Path: path, Op: op, Err: err}
}

func (e *WatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("watch error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *WatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
