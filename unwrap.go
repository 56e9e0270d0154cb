// unwrap.go: traversal over an error's unwrap graph.
//
// Instances chain through Cause/Unwrap, and callers routinely combine them
// with errors.Join or fmt.Errorf("%w"), so predicates need a walk that
// handles both Unwrap() error and Unwrap() []error.
//
// A map[error] seen-set alone is unsafe: interface values whose dynamic type
// is not comparable panic as map keys. Two guards are used instead:
//   - seenErr (map[error]struct{})   for comparable dynamic types
//   - seenPtr (map[uintptr]struct{}) pointer identity for the rest
//
// Non-comparable, non-pointer values are treated as acyclic and bounded by
// the depth cap.
package xgxsubtype

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

func isComparable(err error) bool {
	return err != nil && reflect.TypeOf(err).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	if e, ok := err.(*Error); ok {
		return reflect.ValueOf(e).Pointer(), e != nil
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if err was newly marked, false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	if isComparable(err) {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	return true
}

// Walk visits each distinct node of err's unwrap graph in pre-order
// (a node before its causes, joined children left to right). Traversal stops
// when visit returns false. Nil err or visit is a no-op; cycles are safe.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seenErr, seenPtr) {
				stack = append(stack, c)
			}
		}
	}
}
