package errors

import (
	"errors"
	"io"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("mode", "unknown value")

	expectedMsg := "validation error for field 'mode': unknown value"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	if errors.Is(err, ErrEmptyQuery) {
		t.Error("Plain validation error should not match ErrEmptyQuery")
	}

	noField := NewValidationError("", "bad request")
	if noField.Error() != "validation error: bad request" {
		t.Errorf("Unexpected message without field: '%s'", noField.Error())
	}
}

func TestEmptyQueryError(t *testing.T) {
	err := NewEmptyQueryError("q")

	expectedMsg := "validation error for field 'q': query phrase is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrEmptyQuery) {
		t.Error("Expected error to match ErrEmptyQuery sentinel")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestStorageError(t *testing.T) {
	err := NewStorageError("scan pages", io.ErrUnexpectedEOF)

	expectedMsg := "storage scan pages failed: unexpected EOF"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrStorageUnavailable) {
		t.Error("Expected error to match ErrStorageUnavailable sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestExtractionError(t *testing.T) {
	cause := errors.New("malformed xref table")
	err := NewExtractionError("docs/EFTA00001.pdf", cause)

	expectedMsg := "cannot extract pages from 'docs/EFTA00001.pdf': malformed xref table"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrUnsupportedFile) {
		t.Error("Expected error to match ErrUnsupportedFile sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	var wrapped error = NewStorageError("open", errors.New("disk full"))

	var storageErr *StorageError
	if !errors.As(wrapped, &storageErr) {
		t.Fatal("Expected errors.As to find StorageError")
	}
	if storageErr.Operation != "open" {
		t.Errorf("Expected operation 'open', got '%s'", storageErr.Operation)
	}

	if errors.Is(wrapped, ErrInvalidInput) {
		t.Error("StorageError should not match ErrInvalidInput")
	}
}
