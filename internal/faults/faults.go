// Package faults defines the error categories shared by the scrape and
// notify pipelines.
//
// Every failure that aborts a cycle is tagged with a Kind so the loops
// can log it with the right context and the top-level handler can decide
// between retrying on the next tick and stopping the process.
package faults

import (
	"errors"
	"fmt"
)

// Kind categorizes a pipeline failure.
type Kind string

const (
	// Transport covers network and HTTP failures fetching a page.
	Transport Kind = "transport"
	// ShapeChanged means an expected markup element or attribute was
	// missing or unparseable. Usually the site changed.
	ShapeChanged Kind = "shape_changed"
	// Data covers malformed persisted JSON or timestamps on read-back.
	Data Kind = "data"
	// Credential means a required secret was absent at startup.
	Credential Kind = "credential"
	// Store covers failures in the underlying database.
	Store Kind = "store"
)

// Error is a tagged pipeline error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error from a message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Errorf creates a tagged error from a format string. Use %w to keep an
// underlying cause unwrappable.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap tags an existing error. Returns nil if err is nil. If err is
// already tagged, the original tag wins.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the Kind of err, or an empty Kind if err is untagged.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return ""
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
