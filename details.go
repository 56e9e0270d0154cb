// details.go: details normalization and instance property population.
//
// Design:
//   • Details must be object-shaped: a map with string keys, a struct, or a
//     pointer to a struct. Everything else is rejected with UnexpectedType.
//   • The caller's value is retained as-is (Details()); a map[string]any
//     "view" of it feeds the templater and the property copy.
//   • Precedence: built-in properties and lineage markers always win over
//     same-named detail keys.
package xgxsubtype

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Built-in property names; detail keys never shadow these.
const (
	propMessage = "message"
	propName    = "name"
	propCode    = "code"
	propDetails = "details"
	propCause   = "cause"
	propStack   = "stack"
)

func isBuiltinProp(k string) bool {
	switch k {
	case propMessage, propName, propCode, propDetails, propCause, propStack:
		return true
	}
	return false
}

// detailsArg is a normalized details argument.
type detailsArg struct {
	raw     any
	view    map[string]any
	present bool
}

// renderView is what the templater sees; never nil.
func (d detailsArg) renderView() map[string]any {
	if d.view == nil {
		return map[string]any{}
	}
	return d.view
}

// normalizeDetails validates v and builds its map view. A nil v, untyped or
// typed, means "no details".
func normalizeDetails(v any) (detailsArg, *Error) {
	if isNil(v) {
		return detailsArg{}, nil
	}
	if m, ok := v.(map[string]any); ok {
		return detailsArg{raw: v, view: m, present: true}, nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		view := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			view[iter.Key().String()] = iter.Value().Interface()
		}
		return detailsArg{raw: v, view: view, present: true}, nil

	case rv.Kind() == reflect.Struct,
		rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct:
		var view map[string]any
		if err := mapstructure.Decode(v, &view); err != nil {
			return detailsArg{}, unexpectedType("details parameter", "object", v)
		}
		if view == nil {
			view = map[string]any{}
		}
		return detailsArg{raw: v, view: view, present: true}, nil
	}

	return detailsArg{}, unexpectedType("details parameter", "object", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// assemble populates a fresh instance in one pass. Markers go in first so
// that the "skip if already defined" rule keeps them over detail keys.
func (t *Type) assemble(message string, d detailsArg, cause error) *Error {
	e := &Error{
		typ:     t,
		message: message,
		code:    t.code,
		cause:   cause,
	}

	props := make(map[string]any, len(t.markers)+len(d.view))
	for _, m := range t.markers {
		props[m] = true
	}

	if d.present {
		e.details, e.view, e.hasDetails = d.raw, d.view, true
		for k, v := range d.view {
			if _, defined := props[k]; defined || e.defines(k) {
				continue
			}
			props[k] = v
		}
	}

	e.props = props
	return e
}

// defines reports whether k is a built-in property that is set on e.
func (e *Error) defines(k string) bool {
	if k == propCause {
		return e.cause != nil
	}
	return isBuiltinProp(k)
}
