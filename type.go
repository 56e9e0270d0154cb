package xgxsubtype

import (
	"slices"
	"strings"
)

// Type is an error type: a name, an optional message template and the
// templater that renders it, plus a single parent. Types are created with
// Subtype/Define, never mutated afterwards, and usually held in package-level
// variables:
//
//	var (
//		StorageError = xgxsubtype.Root.Subtype("StorageError")
//		KeyNotFound  = StorageError.Subtype("KeyNotFound",
//			xgxsubtype.Template("key {{key}} not found in {{bucket}}"))
//	)
//
// A type without its own template is abstract: it classifies instances of
// its subtypes but cannot be instantiated itself.
//
// *Type implements error so that errors.Is(err, KeyNotFound) works.
type Type struct {
	name      string
	template  string
	templater Templater
	parent    *Type

	code    Code
	marker  string
	lineage []string // own name first, Root last
	markers []string // same order as lineage
}

// Root is the abstract top of every hierarchy.
var Root = newRoot()

const rootName = "BaseError"

func newRoot() *Type {
	t := &Type{
		name:      rootName,
		templater: DefaultTemplater,
		code:      constantCase(rootName),
		marker:    propertyCase(rootName),
	}
	t.lineage = []string{t.name}
	t.markers = []string{t.marker}
	return t
}

// Subtype declares a child of t. It panics with a BadOptions *Error when the
// declaration is invalid; use Define to receive the failure as a value.
func (t *Type) Subtype(name string, opts ...Option) *Type {
	child, err := t.Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return child
}

// Define declares a child of t.
//
// The child's templater is fixed here: the explicit option, else t's
// templater. Later changes elsewhere never affect an existing type.
func (t *Type) Define(name string, opts ...Option) (*Type, error) {
	if t == nil {
		return nil, badOptions("cannot subtype a nil type")
	}

	var cfg typeConfig
	for _, o := range opts {
		if o != nil {
			o.apply(&cfg)
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, badOptions("type name must not be empty")
	}
	code, marker := constantCase(name), propertyCase(name)
	if code == "" || marker == "" {
		return nil, badOptions("type name " + quote(name) + " has no usable identifier form")
	}
	if isBuiltinProp(marker) {
		return nil, badOptions("type name " + quote(name) + " collides with the built-in property " + quote(marker))
	}

	templater := cfg.templater
	if templater == nil {
		templater = t.templater
	}
	if templater == nil {
		templater = DefaultTemplater
	}

	child := &Type{
		name:      name,
		template:  cfg.template,
		templater: templater,
		parent:    t,
		code:      code,
		marker:    marker,
	}
	child.lineage = append([]string{name}, t.lineage...)
	child.markers = append([]string{marker}, t.markers...)
	return child, nil
}

// Name is nil-safe; a nil type reports "[Unknown]".
func (t *Type) Name() string {
	if t == nil {
		return unknownTypeName
	}
	return t.name
}

// The remaining accessors are nil-safe too and report zero values.

func (t *Type) Template() string {
	if t == nil {
		return ""
	}
	return t.template
}

func (t *Type) Parent() *Type {
	if t == nil {
		return nil
	}
	return t.parent
}

func (t *Type) Code() Code {
	if t == nil {
		return ""
	}
	return t.code
}

func (t *Type) Marker() string {
	if t == nil {
		return ""
	}
	return t.marker
}

// Abstract reports whether t lacks its own template. Ancestors' templates are
// irrelevant.
func (t *Type) Abstract() bool { return t == nil || t.template == "" }

// Lineage returns the names from t up to Root, most specific first.
func (t *Type) Lineage() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.lineage)
}

// Descends reports whether t is other or one of other's descendants.
func (t *Type) Descends(other *Type) bool {
	if other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string { return t.Name() }

// Error makes a Type usable as an errors.Is target.
func (t *Type) Error() string { return t.Name() }

var _ error = (*Type)(nil)
