package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind classifies service failures for the API layer.
type ErrorKind int

const (
	// KindValidation covers missing or malformed input (HTTP 400).
	KindValidation ErrorKind = iota + 1
	// KindConflict covers uniqueness violations (HTTP 409).
	KindConflict
	// KindBlocked covers state preconditions such as open orders (HTTP 400).
	KindBlocked
	// KindNotFound covers absent lookup targets (HTTP 404).
	KindNotFound
	// KindInternal covers persistence failures (HTTP 500).
	KindInternal
)

// Error carries a kind plus the human-readable message surfaced to clients.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Blockedf(format string, args ...any) *Error {
	return &Error{Kind: KindBlocked, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// translate maps persistence errors onto the service taxonomy. The storage
// unique indexes are the source of truth for duplicates; a duplicate-key
// violation slipping past a pre-check still surfaces as a Conflict.
func translate(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundf("%s", notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(strings.ToLower(err.Error()), "unique"),
		strings.Contains(strings.ToLower(err.Error()), "duplicate"):
		return Conflictf("%s", conflictMsg)
	default:
		return Internalf("%s", err.Error())
	}
}
