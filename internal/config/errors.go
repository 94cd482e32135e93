package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the workbench file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnknownKind indicates a widget kind with no pattern behind it.
	ErrUnknownKind = errors.New("unknown widget kind")

	// ErrDuplicateID indicates two widgets or two items share an id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidValue indicates an enum setting outside its allowed values.
	ErrInvalidValue = errors.New("invalid value")

	// ErrEmptyWidget indicates a widget with no items.
	ErrEmptyWidget = errors.New("widget has no items")

	// ErrNestedGroup indicates a nested group outside a toolbar.
	ErrNestedGroup = errors.New("nested group is only allowed in a toolbar")
)

// ParseError represents an error while parsing a workbench file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes one invalid setting. It matches its sentinel
// with errors.Is.
type ValidationError struct {
	// Path locates the setting, e.g. "widget[1].items[0].id".
	Path string
	// Value is the offending value.
	Value any
	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (value: %v)", e.Path, e.Err, e.Value)
}

// Unwrap returns the sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
