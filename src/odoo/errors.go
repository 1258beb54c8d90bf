// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"errors"
	"fmt"
)

// Kind classifies the origin of an [Error].
type Kind int

const (
	// KindTransport covers connection failures, timeouts and non-2xx HTTP statuses.
	KindTransport Kind = iota + 1
	// KindDecode covers bodies that are not JSON or do not match the expected result type.
	KindDecode
	// KindRemote covers JSON-RPC error objects returned by the server.
	KindRemote
	// KindAuthentication covers a login the server rejected.
	KindAuthentication
	// KindPrecondition covers calls made on a session that never logged in.
	KindPrecondition
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindRemote:
		return "remote"
	case KindAuthentication:
		return "authentication"
	case KindPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// ErrNotAuthenticated is wrapped by every precondition failure.
var ErrNotAuthenticated = errors.New("session is not authenticated: call Login first")

// Error is the single error type returned by this package.
// Message holds the full human-readable description, including the text of
// the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the descriptive message.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// newError builds an Error whose message is "<context>: <cause>".
func newError(kind Kind, err error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return &Error{Kind: kind, Message: msg, Err: err}
}

// IsKind reports whether err is, or wraps, an [*Error] of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// RemoteError is the JSON-RPC error object returned by the server.
// Odoo puts the Python exception name and message into Data.
type RemoteError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    RemoteErrorData `json:"data"`
}

// RemoteErrorData carries the server-side exception details.
type RemoteErrorData struct {
	Name          string `json:"name"`
	Message       string `json:"message"`
	Debug         string `json:"debug,omitempty"`
	ExceptionType string `json:"exception_type,omitempty"`
}

// Error returns the most specific message the server provided.
func (r *RemoteError) Error() string {
	if r.Data.Message != "" {
		if r.Data.Name != "" {
			return fmt.Sprintf("%s (code %d): %s: %s", r.Message, r.Code, r.Data.Name, r.Data.Message)
		}
		return fmt.Sprintf("%s (code %d): %s", r.Message, r.Code, r.Data.Message)
	}
	return fmt.Sprintf("%s (code %d)", r.Message, r.Code)
}
