// predicates.go: classification helpers over arbitrary error chains.
//
// Instances answer questions about themselves (IsA, Code, Marked). These
// helpers answer them for any error, looking through fmt.Errorf("%w")
// wrappers, causes and errors.Join trees.
package xgxsubtype

import (
	"errors"
)

// TypeOf returns the type of the first instance found in err's chain, or nil.
func TypeOf(err error) *Type {
	var e *Error
	if errors.As(err, &e) {
		return e.typ
	}
	return nil
}

// CodeOf returns the code of the first instance found in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// IsA reports whether any instance in err's unwrap graph is of type t or one
// of its subtypes. Equivalent to errors.Is(err, t).
func IsA(err error, t *Type) bool {
	if err == nil || t == nil {
		return false
	}
	return errors.Is(err, t)
}

// Find returns the first instance in err's unwrap graph (pre-order) that is
// of type t or one of its subtypes.
func Find(err error, t *Type) (*Error, bool) {
	var found *Error
	Walk(err, func(node error) bool {
		if e, ok := node.(*Error); ok && e.IsA(t) {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// HasCode reports whether any instance in err's unwrap graph carries code.
// Unlike CodeOf it does not stop at the outermost instance.
func HasCode(err error, code Code) bool {
	hit := false
	Walk(err, func(node error) bool {
		if e, ok := node.(*Error); ok && e.code == code {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// IsBuiltinFailure reports whether err's outermost instance is one of the
// library's own failures (bad declaration, abstract construction, bad
// details, nil or unmatched dispatch). Types are compared by identity, so a
// domain type that merely shares a name is not a library failure.
func IsBuiltinFailure(err error) bool {
	t := TypeOf(err)
	if t == nil {
		return false
	}
	for _, b := range []*Type{BadOptions, CannotInstantiateAbstract, DefaultSwitchCase, ThrownValueWasNullOrUndefined, UnexpectedType} {
		if t.Descends(b) {
			return true
		}
	}
	return false
}
