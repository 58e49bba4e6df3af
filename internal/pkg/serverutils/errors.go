package serverutils

import "fmt"

// ErrorKind classifies service-level failures so the HTTP layer can map them
// to statuses without string matching.
type ErrorKind int

const (
	ErrKindNotFound ErrorKind = iota + 1
	ErrKindAccessDenied
	ErrKindValidation
	ErrKindTransientIO
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: message}
}

func NewAccessDeniedError(message string) *AppError {
	return &AppError{Kind: ErrKindAccessDenied, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message}
}

// NewTransientIOError wraps a storage round-trip failure. Surfaced to the
// caller directly; no retry is performed server-side.
func NewTransientIOError(message string, err error) *AppError {
	return &AppError{Kind: ErrKindTransientIO, Message: message, Err: err}
}
