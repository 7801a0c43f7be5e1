package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Error types for the find command
type ErrorType string

const (
	// Argument errors
	ErrorTypeArgument ErrorType = "argument"

	// File errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypePermission   ErrorType = "permission"

	// Output errors
	ErrorTypeOutput ErrorType = "output"
)

// ArgumentError reports missing positional arguments on the command line
type ArgumentError struct {
	Type      ErrorType
	Usage     string
	Got       int
	Want      int
	Timestamp time.Time
}

// NewArgumentError creates a new argument error
func NewArgumentError(usage string, got, want int) *ArgumentError {
	return &ArgumentError{
		Type:      ErrorTypeArgument,
		Usage:     usage,
		Got:       got,
		Want:      want,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface.
// The message is the usage line itself so it can be printed as-is.
func (e *ArgumentError) Error() string {
	return e.Usage
}

// FileError represents a file-related error
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeFileNotFound
	if isPermissionError(err) {
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// isPermissionError checks if the error is a permission error
func isPermissionError(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// Error implements the error interface.
// The underlying OS error already names the operation and path.
func (e *FileError) Error() string {
	if e.Underlying == nil {
		return fmt.Sprintf("file %s failed for %s", e.Operation, e.Path)
	}
	return e.Underlying.Error()
}

// Unwrap returns the underlying error for errors.Is/As
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// OutputError represents a failed write to the output stream
type OutputError struct {
	Type       ErrorType
	Line       int
	Underlying error
	Timestamp  time.Time
}

// NewOutputError creates a new output error for the given line number
func NewOutputError(line int, err error) *OutputError {
	return &OutputError{
		Type:       ErrorTypeOutput,
		Line:       line,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *OutputError) Error() string {
	return fmt.Sprintf("writing line %d failed: %v", e.Line, e.Underlying)
}

// Unwrap returns the underlying error
func (e *OutputError) Unwrap() error {
	return e.Underlying
}
