// typed_field.go: optional, type-safe readers for instance properties.
//
// Overview
//   Details are copied onto instances as untyped properties. TypedField gives
//   declaration sites a typed handle for reading them back:
//
//     var (
//         FKey    = xgxsubtype.Field[string]("key")
//         FBucket = xgxsubtype.Field[string]("bucket")
//     )
//
//     if key, ok := FKey.Get(err); ok { ... }
//
// Caveats
//   • The stored dynamic type must match T exactly; no conversions are made.
//   • Get reads the outermost instance in err's chain (errors.As). Built-in
//     property names resolve as in (*Error).Get.
package xgxsubtype

import (
	"errors"
	"fmt"
)

// TypedField reads property key as a T.
type TypedField[T any] struct {
	key string
}

// Field constructs a TypedField[T] for key.
func Field[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

func (f TypedField[T]) Key() string { return f.key }

// Get returns (zero, false) when err holds no instance, the property is
// absent, or its dynamic type is not T.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	var e *Error
	if !errors.As(err, &e) {
		return zero, false
	}
	v, ok := e.Get(f.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics on absence or type mismatch. Intended for tests
// and for properties whose absence is a programming error.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	var e *Error
	if !errors.As(err, &e) {
		panic(fmt.Errorf("xgxsubtype.TypedField[%T](%q): no instance in %v", zero, f.key, err))
	}
	v, ok := e.Get(f.key)
	if !ok {
		panic(fmt.Errorf("xgxsubtype.TypedField[%T](%q): property missing on %s", zero, f.key, e.typ.Name()))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("xgxsubtype.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
