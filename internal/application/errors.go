package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

// ErrorKind classifies errors for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindInvalidData
	KindNotFound
	KindAlreadyExists
	KindInvalidSearch
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidData:
		return "invalid_data"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidSearch:
		return "invalid_search"
	default:
		return "internal"
	}
}

// AppError is a deterministic, non-retryable application failure.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
	ErrMissingInput          = errors.New("input is required")
)

func NotFound(id int64) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("user with id %d not found", id), Err: ErrUserNotFound}
}

func AlreadyExists(email string) *AppError {
	return &AppError{Kind: KindAlreadyExists, Message: fmt.Sprintf("user with email %s already exists", email), Err: ErrUserAlreadyExists}
}

func InvalidSearchCriteria() *AppError {
	return &AppError{Kind: KindInvalidSearch, Message: "at least one search criterion must have a value", Err: ErrInvalidSearchCriteria}
}

func InvalidInput(msg string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: msg, Err: ErrMissingInput}
}

// KindOf classifies err. Domain validation errors map to KindInvalidData,
// anything unknown is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, entity.ErrInvalidData) {
		return KindInvalidData
	}
	return KindInternal
}
