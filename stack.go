// stack.go: call-site capture for instances.
//
// Every successful New/Build records where the instance was created, the
// same way a thrown error records its origin. Library failures record the
// point inside the library that produced them.
package xgxsubtype

import (
	"runtime"
)

// Frame is a single call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or pkg.(*T).Method)
}

// Stack is a slice of Frames from the most recent call outward.
type Stack []Frame

// Top returns the innermost frame, or the zero Frame for an empty stack.
func (s Stack) Top() Frame {
	if len(s) == 0 {
		return Frame{}
	}
	return s[0]
}

const defaultMaxDepth = 32

// captureStackDefault records frames starting at the caller of the function
// that calls captureStackDefault, plus skip more frames.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack skips runtime.Callers, itself and captureStackDefault (+3),
// then skip frames, and resolves at most maxDepth frames. CallersFrames
// expands inlined calls.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more || len(out) == maxDepth {
			break
		}
	}
	return out
}
