package xgxsubtype

import (
	"fmt"
	"strconv"
)

// Library failure types. Each is a concrete child of Root, so failures can be
// dispatched on with Switch or matched with errors.Is like any domain error.
//
// They are assigned in init: Define reports bad declarations through
// BadOptions, which would otherwise make these variables depend on themselves.
var (
	// CannotInstantiateAbstract is returned when New/Build is called on a
	// type without its own template (Root included).
	CannotInstantiateAbstract *Type

	// DefaultSwitchCase is returned by Switch when nothing matched and no
	// fallback was supplied. Its cause is the dispatched value.
	DefaultSwitchCase *Type

	// ThrownValueWasNullOrUndefined is returned by Switch for nil subjects.
	ThrownValueWasNullOrUndefined *Type

	// UnexpectedType is returned when a constructor argument has the wrong shape.
	UnexpectedType *Type

	// BadOptions is returned (or panicked by Subtype) for invalid declarations
	// and argument lists.
	BadOptions *Type
)

func init() {
	CannotInstantiateAbstract = Root.Subtype("CannotInstantiateAbstract",
		Template("{{typeName}} is an abstract error type and cannot be instantiated directly.  "+
			"Use Subtype() to make a concrete subtype."))
	DefaultSwitchCase = Root.Subtype("DefaultSwitchCase",
		Template(`No switch match for thrown value "{{thrownValue}}" with type "{{thrownValuePrototypeName}}".`))
	ThrownValueWasNullOrUndefined = Root.Subtype("ThrownValueWasNullOrUndefined",
		Template("Thrown value was {{thrownValueToString}}."))
	UnexpectedType = Root.Subtype("UnexpectedType",
		Template("Expected {{valueName}} to be type {{expectedTypeDescription}}, but value was {{value}}, of type {{valueType}}."))
	BadOptions = Root.Subtype("BadOptions",
		Template("Provided options were unacceptable.  {{reason}}"))
}

// abstractFailure goes through the internal literal path so that the guard
// itself can never trip the guard.
func abstractFailure(t *Type) *Error {
	name := t.Name()
	if name == "" {
		name = unknownTypeName
	}
	details := map[string]any{"typeName": name}
	msg := CannotInstantiateAbstract.templater(CannotInstantiateAbstract.template, details)
	e := CannotInstantiateAbstract.literal(msg, details, nil)
	e.stk = captureStackDefault(1)
	return e
}

func unexpectedType(valueName, expected string, value any) *Error {
	e, _ := UnexpectedType.build(map[string]any{
		"value":                   value,
		"valueType":               fmt.Sprintf("%T", value),
		"expectedTypeDescription": expected,
		"valueName":               valueName,
	}, nil)
	e.stk = captureStackDefault(1)
	return e
}

func badOptions(reason string) *Error {
	// BadOptions is nil only while init is declaring the library types, and
	// those declarations are valid.
	if BadOptions == nil {
		panic("xgxsubtype: " + reason)
	}
	e, _ := BadOptions.build(map[string]any{"reason": reason}, nil)
	e.stk = captureStackDefault(1)
	return e
}

func quote(s string) string { return strconv.Quote(s) }
