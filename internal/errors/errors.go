// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so callers can distinguish a database that could not be
// opened from a query or command the engine rejected.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// OpenFailed indicates the database file could not be opened.
	OpenFailed Kind = "open_failed"
	// QueryFailed indicates a read query was rejected or failed during execution.
	QueryFailed Kind = "query_failed"
	// CommandFailed indicates a mutating statement was rejected or failed during execution.
	CommandFailed Kind = "command_failed"
	// BadDatabase indicates the resolved path does not point at a usable database file.
	BadDatabase Kind = "bad_database"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying engine error for errors.Is/As checks.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err if it is (or wraps) an *E, or "" otherwise.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
