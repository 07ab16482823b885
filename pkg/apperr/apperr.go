package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

type Kind string

const (
	KindRuleViolation Kind = "rule_violation"
	KindFormat        Kind = "format_error"
	KindNotFound      Kind = "not_found"
	KindPersistence   Kind = "persistence"
)

// Error is the failure half of every service call. Message is what the caller shows to the
// client; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func RuleViolation(msg string) *Error {
	return &Error{Kind: KindRuleViolation, Message: msg}
}

func Format(msg string, cause error) *Error {
	return &Error{Kind: KindFormat, Message: msg, Err: cause}
}

// NotFound builds the "<entity> not found" failure.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found", Err: ErrNotFound}
}

// Persistence builds the "error registering <entity>: <cause>" failure.
func Persistence(entity string, cause error) *Error {
	return Storage("registering", entity, cause)
}

// Storage builds an "error <action> <entity>: <cause>" failure for reads and deletes.
func Storage(action, entity string, cause error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Message: fmt.Sprintf("error %s %s: %v", action, entity, cause),
		Err:     cause,
	}
}

// KindOf reports the kind of err. Errors that are not *Error count as persistence failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// IsNotFound reports whether err carries ErrNotFound anywhere in its chain.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
