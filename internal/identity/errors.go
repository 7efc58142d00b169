package identity

import (
	"errors"
	"fmt"
)

// Kind classifies identity failures so transports can map them consistently.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindStore      Kind = "store"
)

// Error is a classified identity failure. Message is safe to return to clients;
// Cause carries the underlying error for logs.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf returns the Kind of err, or the empty Kind if err is not an *Error.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// MessageOf returns the client-safe message carried by err.
func MessageOf(err error) string {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Message
	}
	return err.Error()
}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ErrEmailTaken is returned when a registration collides with an existing email.
func ErrEmailTaken() *Error {
	return &Error{Kind: KindConflict, Message: "Email already exists"}
}

// ErrEmailNotFound is returned when no record holds the given email.
func ErrEmailNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Email does not exist"}
}

// ErrUserNotFound is returned when no record holds the given id.
func ErrUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "User not found"}
}

// ErrInvalidPassword is returned when the supplied password does not match the stored hash.
func ErrInvalidPassword() *Error {
	return &Error{Kind: KindAuth, Message: "Invalid password"}
}

// ErrStore wraps a persistence failure.
func ErrStore(cause error) *Error {
	return &Error{Kind: KindStore, Message: "storage unavailable", Cause: cause}
}
