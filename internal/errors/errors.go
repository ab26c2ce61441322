package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyQuery is returned when a search phrase is missing or blank
	ErrEmptyQuery = errors.New("no query")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable is returned when the page corpus cannot be read
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedFile is returned when a source document cannot be ingested
	ErrUnsupportedFile = errors.New("unsupported file")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// EmptyQueryError is a ValidationError for a blank search phrase
type EmptyQueryError struct {
	ValidationError
}

func (e *EmptyQueryError) Is(target error) bool {
	return target == ErrEmptyQuery || target == ErrInvalidInput
}

// NewEmptyQueryError creates a new EmptyQueryError for the given parameter
func NewEmptyQueryError(field string) *EmptyQueryError {
	return &EmptyQueryError{ValidationError{Field: field, Message: "query phrase is required"}}
}

// StorageError wraps a failure to read or write the page store
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Operation, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(operation string, err error) *StorageError {
	return &StorageError{Operation: operation, Err: err}
}

// ExtractionError represents a document that could not be split into pages
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract pages from '%s': %v", e.Path, e.Err)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrUnsupportedFile
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(path string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Err: err}
}
