package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// MalformedInputError is a request body that failed JSON parsing or a shape check.
type MalformedInputError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

// CapacityExceededError rejects an entry that would push a category past its
// region capacity. It is user-facing, unlike the silent truncation done on save.
type CapacityExceededError struct {
	ErrorMessage
	Category string
	Capacity int
}

// StorageError wraps a backend read/write failure. The underlying error is
// logged but never sent to the client.
type StorageError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewMalformedInputError(message string) *MalformedInputError {
	return &MalformedInputError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewCapacityExceededError(category string, capacity int) *CapacityExceededError {
	return &CapacityExceededError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("category %q is full (max %d bookmarks)", category, capacity)},
		Category:     category,
		Capacity:     capacity,
	}
}

func NewStorageError(operation string, err error) *StorageError {
	return &StorageError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", operation, err)},
		Operation:    operation,
		Err:          err,
	}
}
