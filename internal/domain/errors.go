// Package domain provides the error vocabulary shared by all resource features.
//
// Instead of one error enum per resource, every feature reports failures
// through a single Kind-tagged Error parameterized by the resource name.
// Callers branch on the kind with the IsXxx predicates and keep the resource
// name for logging and messages.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a resource failure.
type Kind int

const (
	// KindNotFound indicates that the requested record does not exist.
	KindNotFound Kind = iota

	// KindConflict indicates a uniqueness violation (e.g. duplicate email).
	KindConflict

	// KindNoUpdateFields indicates an update request that carried no fields.
	KindNoUpdateFields

	// KindInfrastructure indicates a store or driver failure. The underlying
	// error is retained for logs and is never echoed to clients.
	KindInfrastructure
)

// String returns a short name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "already exists"
	case KindNoUpdateFields:
		return "no fields provided for update"
	case KindInfrastructure:
		return "infrastructure error"
	default:
		return "unknown error"
	}
}

// Error is a resource failure tagged with a Kind.
type Error struct {
	Kind     Kind
	Resource string
	Err      error // optional cause, kept for logging
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Resource, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Kind)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds a resource error with an optional cause.
func NewError(kind Kind, resource string, cause error) *Error {
	return &Error{Kind: kind, Resource: resource, Err: cause}
}

// kindOf extracts the Kind from err if it is (or wraps) a *Error.
func kindOf(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// IsNotFound reports whether err is a not-found resource error.
func IsNotFound(err error) bool { return kindOf(err, KindNotFound) }

// IsConflict reports whether err is a uniqueness-conflict resource error.
func IsConflict(err error) bool { return kindOf(err, KindConflict) }

// IsNoUpdateFields reports whether err is an empty-update resource error.
func IsNoUpdateFields(err error) bool { return kindOf(err, KindNoUpdateFields) }

// IsInfrastructure reports whether err is a store/driver resource error.
func IsInfrastructure(err error) bool { return kindOf(err, KindInfrastructure) }
