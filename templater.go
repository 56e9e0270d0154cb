package xgxsubtype

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Templater renders a message template against an instance's details.
// Implementations must not fail on missing keys and must not escape output.
type Templater func(template string, details map[string]any) string

const (
	tagStart = "{{"
	tagEnd   = "}}"
)

// tripleTags folds the unescaped-variable form {{{name}}} into {{&name}};
// nothing is escaped here, so both read the same value.
var tripleTags = strings.NewReplacer("{{{", "{{&", "}}}", "}}")

// DefaultTemplater substitutes {{name}} tags with values from details.
//
//   - {{ name }}   surrounding spaces are ignored
//   - {{a.b}}      walks nested map[string]any values
//   - {{{name}}}   same as {{name}} (no escaping anywhere)
//   - {{#...}}, {{^...}}, {{/...}}, {{!...}} render empty
//
// Missing keys and nil values render as the empty string.
func DefaultTemplater(template string, details map[string]any) string {
	if !strings.Contains(template, tagStart) {
		return template
	}
	template = tripleTags.Replace(template)
	return fasttemplate.ExecuteFuncString(template, tagStart, tagEnd, func(w io.Writer, tag string) (int, error) {
		v, ok := lookupTag(details, tag)
		if !ok {
			return 0, nil
		}
		return io.WriteString(w, renderValue(v))
	})
}

func lookupTag(details map[string]any, tag string) (any, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, false
	}
	switch tag[0] {
	case '#', '^', '/', '!':
		return nil, false
	case '&':
		tag = strings.TrimSpace(tag[1:])
	}
	if v, ok := details[tag]; ok {
		return v, true
	}
	var cur any = details
	for part := range strings.SplitSeq(tag, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// renderValue never calls methods on nil pointers; those render empty like nil.
func renderValue(v any) string {
	if isNil(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
