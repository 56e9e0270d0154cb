// format.go: fmt.Formatter for instances.
//
// Behavior:
//
//	%s, %v   → Error()
//	%q       → quoted Error()
//	%+v      → multi-line:
//	             code=<CODE> type=<Name> msg="<message>"
//	             lineage: Leaf > Parent > BaseError
//	             details: k1=v1 k2=v2      (sorted keys)
//	             cause: <cause formatted with %+v>
//	             stack:
//	               pkg.Func file.go:12
package xgxsubtype

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	if e.code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", e.code)
	}
	_, _ = fmt.Fprintf(w, "type=%s msg=%q", e.typ.Name(), e.message)

	if e.typ != nil && len(e.typ.lineage) > 0 {
		_, _ = fmt.Fprintf(w, "\nlineage: %s", strings.Join(e.typ.lineage, " > "))
	}

	if len(e.view) > 0 {
		_, _ = io.WriteString(w, "\ndetails:")
		keys := make([]string, 0, len(e.view))
		for k := range e.view {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, " %s=%v", k, e.view[k])
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

var _ fmt.Formatter = (*Error)(nil)
