// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for status mapping and caller handling.
type Kind string

const (
	KindValidation  Kind = "validation_error"
	KindNotFound    Kind = "not_found"
	KindUnknownTool Kind = "unknown_tool"
	KindInternal    Kind = "internal_error"
)

// Error is the structured error returned by store, engine and registry
// operations. It carries the offending field or entity id so callers can
// act on it, but never wraps raw storage errors into the message.
type Error struct {
	Kind    Kind
	Message string
	Field   string // offending input field, for validation errors
	ID      string // referenced entity id, for not-found errors
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field: %s)", e.Kind, e.Message, e.Field)
	case e.ID != "":
		return fmt.Sprintf("%s: %s (id: %s)", e.Kind, e.Message, e.ID)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Validation creates a validation error for a specific input field.
func Validation(field, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// NotFound creates a not-found error for an entity kind and id.
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		ID:      id,
	}
}

// UnknownTool creates a registry-miss error.
func UnknownTool(name string) *Error {
	return &Error{
		Kind:    KindUnknownTool,
		Message: fmt.Sprintf("unknown tool: %s", name),
		ID:      name,
	}
}

// Internal creates an opaque internal error. The cause is intended for
// logging only and is not included in the message surfaced to callers.
func Internal(msg string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: msg,
	}
}

// KindOf extracts the Kind of an error, or KindInternal for any error
// that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNotFound reports whether err is a not-found or unknown-tool error.
func IsNotFound(err error) bool {
	k := KindOf(err)
	return k == KindNotFound || k == KindUnknownTool
}
