// Package errors defines the failures reported by the search engine.
// Callers classify them with errors.Is against the sentinels below.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrIndexNotFound      = errors.New("no such index")
	ErrIndexAlreadyExists = errors.New("index name already in use")
	ErrInvalidInput       = errors.New("invalid input")

	// ErrNegativeDocumentID also matches ErrInvalidInput.
	ErrNegativeDocumentID = fmt.Errorf("%w: negative document id", ErrInvalidInput)
)

// IndexError ties a registry failure to the index it concerns.
type IndexError struct {
	IndexName string
	Err       error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index '%s': %v", e.IndexName, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

func NewIndexNotFoundError(indexName string) *IndexError {
	return &IndexError{IndexName: indexName, Err: ErrIndexNotFound}
}

func NewIndexAlreadyExistsError(indexName string) *IndexError {
	return &IndexError{IndexName: indexName, Err: ErrIndexAlreadyExists}
}

// ValidationError rejects a caller-supplied setting or parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DocumentIDError rejects a document whose ID is negative.
type DocumentIDError struct {
	DocumentID int
}

func (e *DocumentIDError) Error() string {
	return fmt.Sprintf("document %d: ID must not be negative", e.DocumentID)
}

func (e *DocumentIDError) Unwrap() error { return ErrNegativeDocumentID }

func NewDocumentIDError(docID int) *DocumentIDError {
	return &DocumentIDError{DocumentID: docID}
}
