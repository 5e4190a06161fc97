// Package apperr defines the closed failure taxonomy shared by validation,
// the store layer, and the request handlers. Every kind carries a fixed HTTP
// status; the handler boundary is the single place a kind becomes a response.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindRateLimited
	KindTooLarge
	KindTimeout
	KindBadBody
)

// Error is the taxonomy's error type. Message is safe to return to clients;
// internal detail belongs in logs, never here.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error  { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error    { return &Error{Kind: KindNotFound, Message: msg} }
func RateLimited(msg string) *Error { return &Error{Kind: KindRateLimited, Message: msg} }
func TooLarge(msg string) *Error    { return &Error{Kind: KindTooLarge, Message: msg} }
func Timeout(msg string) *Error     { return &Error{Kind: KindTimeout, Message: msg} }
func BadBody(msg string) *Error     { return &Error{Kind: KindBadBody, Message: msg} }

// Status maps any error to its HTTP status. Errors outside the taxonomy
// default to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindBadBody:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Anything outside the
// taxonomy gets a generic message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err belongs to the taxonomy with the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
