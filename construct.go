// construct.go: instance construction.
//
// Entry points:
//   - New / Build: public. Enforce the abstract guard, validate details,
//     render the leaf type's template, capture a stack.
//   - literal: internal. Takes an already rendered message and skips the
//     guard; used by the library for its own guard failure.
//
// Notes:
//   - Only the instantiated type's template and templater render. Ancestor
//     templates are never consulted.
//   - Code is the instantiated type's code, set once.
package xgxsubtype

import (
	"fmt"
)

// New builds an instance of t. Accepted call shapes:
//
//	New()
//	New(details)
//	New(cause)            // an error as the only argument is the cause
//	New(details, cause)
//
// details must be a map with string keys or a struct (pointer); a nil
// details argument counts as absent.
//
// Construction failures are returned in place of the instance, as library
// failure instances (CannotInstantiateAbstract, UnexpectedType, BadOptions),
// so `return ErrX.New(d)` always yields a non-nil error. Use Build to tell
// the two apart.
func (t *Type) New(args ...any) *Error {
	if t.Abstract() {
		return abstractFailure(t)
	}
	details, cause, fail := splitArgs(args)
	if fail != nil {
		return fail
	}
	e, fail := t.build(details, cause)
	if fail != nil {
		return fail
	}
	e.stk = captureStackDefault(1)
	return e
}

// Build is like New but reports construction failures separately.
// If details is itself an error and cause is nil, it is taken as the cause.
func (t *Type) Build(details any, cause error) (*Error, error) {
	e, fail := t.build(details, cause)
	if fail != nil {
		return nil, fail
	}
	e.stk = captureStackDefault(1)
	return e, nil
}

func (t *Type) build(details any, cause error) (*Error, *Error) {
	if t.Abstract() {
		return nil, abstractFailure(t)
	}
	if isNil(cause) {
		cause = nil
	}
	if c, ok := details.(error); ok && !isNil(details) {
		details, cause = nil, c
	}
	d, fail := normalizeDetails(details)
	if fail != nil {
		return nil, fail
	}
	msg := t.templater(t.template, d.renderView())
	return t.assemble(msg, d, cause), nil
}

// literal assembles an instance from a rendered message. It bypasses the
// abstract guard and the details validation; details may be nil.
func (t *Type) literal(message string, details map[string]any, cause error) *Error {
	var d detailsArg
	if details != nil {
		d = detailsArg{raw: details, view: details, present: true}
	}
	return t.assemble(message, d, cause)
}

// splitArgs maps New's variadic form onto (details, cause).
func splitArgs(args []any) (any, error, *Error) {
	switch len(args) {
	case 0:
		return nil, nil, nil
	case 1:
		return args[0], nil, nil
	case 2:
		if isNil(args[1]) {
			return args[0], nil, nil
		}
		c, ok := args[1].(error)
		if !ok {
			return nil, nil, unexpectedType("cause parameter", "error", args[1])
		}
		return args[0], c, nil
	default:
		return nil, nil, badOptions(fmt.Sprintf("New accepts at most 2 arguments (details, cause), got %d.", len(args)))
	}
}
