// doc.go: package documentation for xgx-subtype
//
// Package xgxsubtype declares error types at runtime, arranges them in
// single-inheritance hierarchies with message templates and structured
// details, and dispatches on an error's most specific type.
//
// # Declaring Types
//
// Every hierarchy starts at Root. A type without a template is abstract;
// a type with one is concrete:
//
//	var (
//		StorageError = xgxsubtype.Root.Subtype("StorageError") // abstract
//		KeyNotFound  = StorageError.Subtype("KeyNotFound",
//			xgxsubtype.Template("key {{key}} not found in {{bucket}}"))
//		ReadOnly = StorageError.Subtype("ReadOnly", xgxsubtype.Options{
//			Template:  "bucket {{bucket}} is read-only",
//			Templater: myTemplater,
//		})
//	)
//
// Subtype panics on an invalid declaration (it is meant for package-level
// variables); Define returns the failure instead. A child's templater is
// fixed when it is declared: its own, else its parent's.
//
// # Creating Instances
//
//	err := KeyNotFound.New(map[string]any{"key": "a", "bucket": "b"})
//	err.Message()     // "key a not found in b"
//	err.Code()        // "KEY_NOT_FOUND"
//	err.Get("key")    // "a", true       (details are copied onto the instance)
//	err.Marked("storageError")           // true: one marker per lineage level
//	errors.Is(err, StorageError)         // true
//
//	err = KeyNotFound.New(details, ioErr) // with a cause
//	err = KeyNotFound.New(ioErr)          // cause only
//
// Only the instantiated type's template renders. Detail keys never overwrite
// built-in properties (message, name, code, details, stack, cause) or
// lineage markers.
//
// # Dispatching
//
//	status, err := xgxsubtype.Switch(err, xgxsubtype.Cases[int]{
//		"KeyNotFound":  func(any) int { return 404 },
//		"StorageError": func(any) int { return 503 },
//	}, func(any) int { return 500 })
//
// Switch walks the value's lineage most specific first and runs exactly one
// handler. Plain Go values dispatch on their Go type string, then "error"
// (for errors), then "any".
//
// # Library Failures
//
// Failures raised by the library are instances of its own types:
// CannotInstantiateAbstract, UnexpectedType, ThrownValueWasNullOrUndefined,
// DefaultSwitchCase and BadOptions. Dispatch on them like any other type.
//
// # Concurrency
//
// There is no registry and no global mutable state. Types are immutable
// values and instances are never modified after construction, so all
// operations are safe for concurrent use.
//
// # Logging
//
// The core never logs. The xgxzap subpackage encodes instances as zap
// objects.
package xgxsubtype
