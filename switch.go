package xgxsubtype

import (
	"fmt"
	"reflect"
)

// Catch-all dispatch levels appended after a value's own type levels.
const (
	LevelError = "error" // any value implementing error
	LevelAny   = "any"   // every value
)

const unknownTypeName = "[Unknown]"

// Cases maps level names (type names, LevelError, LevelAny) to handlers.
type Cases[R any] map[string]func(any) R

// Switch runs the handler for the most specific level of value that has an
// entry in cases, and returns its result.
//
// Levels, most specific first:
//
//	*Error         its type's lineage (own name … "BaseError"), "error", "any"
//	other errors   Go type string (e.g. "*fs.PathError"), "error", "any"
//	anything else  Go type string (e.g. "string"), "any"
//
// Exactly one handler runs. With no match, the first non-nil fallback runs.
// Without a fallback, Switch returns a DefaultSwitchCase instance whose cause
// is value. A nil value (untyped or typed) yields a
// ThrownValueWasNullOrUndefined instance and runs nothing.
func Switch[R any](value any, cases Cases[R], fallback ...func(any) R) (R, error) {
	var zero R
	if isNil(value) {
		e, _ := ThrownValueWasNullOrUndefined.build(map[string]any{
			"thrownValue":         value,
			"thrownValueToString": nilString(value),
		}, nil)
		e.stk = captureStackDefault(1)
		return zero, e
	}

	chain := levels(value)
	for _, name := range chain {
		if h, ok := cases[name]; ok && h != nil {
			return h(value), nil
		}
	}

	for _, f := range fallback {
		if f != nil {
			return f(value), nil
		}
	}

	typeName := unknownTypeName
	if len(chain) > 0 && chain[0] != "" {
		typeName = chain[0]
	}
	e, _ := DefaultSwitchCase.build(map[string]any{
		"thrownValue":              value,
		"thrownValuePrototypeName": typeName,
	}, asCause(value))
	e.stk = captureStackDefault(1)
	return zero, e
}

// levels lists the dispatch level names of v, most specific first.
func levels(v any) []string {
	if e, ok := v.(*Error); ok && e.typ != nil {
		out := make([]string, 0, len(e.typ.lineage)+2)
		out = append(out, e.typ.lineage...)
		return append(out, LevelError, LevelAny)
	}
	name := reflect.TypeOf(v).String()
	if _, ok := v.(error); ok {
		return []string{name, LevelError, LevelAny}
	}
	return []string{name, LevelAny}
}

func nilString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("nil (%T)", v)
}

// thrownValue carries a non-error dispatch subject as a cause. It is used by
// pointer so that unhashable subjects (maps, slices) never end up as map keys
// or == operands during errors.Is or Walk.
type thrownValue struct{ v any }

func (t *thrownValue) Error() string { return fmt.Sprintf("thrown value %v (%T)", t.v, t.v) }

// Value returns the dispatch subject.
func (t *thrownValue) Value() any { return t.v }

func asCause(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &thrownValue{v: v}
}
