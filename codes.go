// codes.go: code and marker derivation plus the codes the library itself
// emits.
//
// Conventions:
//   - Codes are CONSTANT_CASE forms of type names ("KeyNotFound" → "KEY_NOT_FOUND").
//   - Markers are lowerCamelCase forms ("KeyNotFound" → "keyNotFound").
//   - Projects get their codes from the names they declare; there is no
//     central registry.
package xgxsubtype

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

func constantCase(name string) Code {
	return Code(strcase.UpperSnakeCase(strings.TrimSpace(name)))
}

func propertyCase(name string) string {
	return strcase.LowerCamelCase(strings.TrimSpace(name))
}

// Codes of the library's own failure types.
const (
	CodeBadOptions                    Code = "BAD_OPTIONS"
	CodeCannotInstantiateAbstract     Code = "CANNOT_INSTANTIATE_ABSTRACT"
	CodeDefaultSwitchCase             Code = "DEFAULT_SWITCH_CASE"
	CodeThrownValueWasNullOrUndefined Code = "THROWN_VALUE_WAS_NULL_OR_UNDEFINED"
	CodeUnexpectedType                Code = "UNEXPECTED_TYPE"
)

// allBuiltinCodes is ordered alphabetically. Unexported to avoid exposing
// mutable slice identity to callers.
var allBuiltinCodes = []Code{
	CodeBadOptions,
	CodeCannotInstantiateAbstract,
	CodeDefaultSwitchCase,
	CodeThrownValueWasNullOrUndefined,
	CodeUnexpectedType,
}

var builtinCodeSet = map[Code]struct{}{
	CodeBadOptions:                    {},
	CodeCannotInstantiateAbstract:     {},
	CodeDefaultSwitchCase:             {},
	CodeThrownValueWasNullOrUndefined: {},
	CodeUnexpectedType:                {},
}

// BuiltinCodes returns a copy of the library codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is emitted by the library itself.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}

func (c Code) String() string { return string(c) }
