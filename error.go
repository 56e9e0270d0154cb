// Package xgxsubtype lets callers declare error types at runtime, arrange
// them into single-inheritance hierarchies, and dispatch on the most
// specific type of an error value.
//
// Design tenets:
//   - Types are values: declared once, immutable, safe to share.
//   - Interop-first: instances are plain Go errors and work with
//     errors.Is/As/Join.
//   - Minimal surface: no logging/HTTP/JSON in core (see xgxzap for logs).
//   - Dog-fooding: every failure the library reports is an instance of its
//     own hierarchy, so it can be dispatched on like any domain error.
package xgxsubtype

import (
	"maps"
)

// Code is the machine-readable identifier of an instance. It is derived from
// the concrete type's name in CONSTANT_CASE (e.g. "UserNotFound" yields
// "USER_NOT_FOUND").
type Code string

// Error is an instance of a concrete Type.
//
// Identity fields (type, message, code, details, cause) are fixed at
// construction. Nothing on an Error mutates after New/Build returns, so
// instances may be shared across goroutines freely.
type Error struct {
	typ     *Type
	message string
	code    Code

	details    any
	hasDetails bool
	view       map[string]any // details as a map; feeds rendering and %+v

	// props holds lineage markers and detail keys copied onto the instance.
	props map[string]any

	cause error
	stk   Stack
}

// Error returns "CODE: message", or just the code when the message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.message == "" {
		if e.code != "" {
			return string(e.code)
		}
		return "error"
	}
	if e.code != "" {
		return string(e.code) + ": " + e.message
	}
	return e.message
}

// Unwrap and Cause are nil-safe so that typed-nil instances can be walked.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) Cause() error { return e.Unwrap() }

func (e *Error) Message() string  { return e.message }
func (e *Error) Code() Code       { return e.code }
func (e *Error) Type() *Type      { return e.typ }
func (e *Error) Stack() Stack     { return e.stk }
func (e *Error) HasDetails() bool { return e.hasDetails }

// Details returns the details value exactly as the caller supplied it, or nil
// when none were supplied. A map[string]any is returned as the same map.
func (e *Error) Details() any {
	if !e.hasDetails {
		return nil
	}
	return e.details
}

// Get reads a property of the instance. Built-in names resolve first
// (message, name, code, details, stack, and cause when one is set), then
// lineage markers and copied detail keys.
func (e *Error) Get(key string) (any, bool) {
	if e == nil {
		return nil, false
	}
	switch key {
	case propMessage:
		return e.message, true
	case propName:
		return e.typ.Name(), true
	case propCode:
		return e.code, true
	case propStack:
		return e.stk, true
	case propDetails:
		if e.hasDetails {
			return e.details, true
		}
	case propCause:
		if e.cause != nil {
			return e.cause, true
		}
	}
	v, ok := e.props[key]
	return v, ok
}

// Marked reports whether the marker property is set to true on the instance.
func (e *Error) Marked(marker string) bool {
	if e == nil {
		return false
	}
	v, _ := e.props[marker].(bool)
	return v
}

// Fields returns a copy of the instance's own properties: lineage markers
// and copied detail keys. Callers may mutate the result freely.
func (e *Error) Fields() map[string]any {
	if e == nil || len(e.props) == 0 {
		return nil
	}
	return maps.Clone(e.props)
}

// IsA reports whether the instance's type is t or descends from t.
func (e *Error) IsA(t *Type) bool {
	if e == nil || e.typ == nil || t == nil {
		return false
	}
	return e.typ.Descends(t)
}

// Is lets errors.Is classify instances against types:
//
//	errors.Is(err, UserNotFound) // true for UserNotFound and its subtypes
func (e *Error) Is(target error) bool {
	t, ok := target.(*Type)
	if !ok {
		return false
	}
	return e.IsA(t)
}

var _ error = (*Error)(nil)
