package xgxsubtype

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatLeaf = Root.Subtype("FormatParent").Subtype("FormatLeaf", Template("failed on {{host}}"))

func TestFormat_CompactVerbs(t *testing.T) {
	t.Parallel()

	e := formatLeaf.New(map[string]any{"host": "db1"})

	assert.Equal(t, "FORMAT_LEAF: failed on db1", fmt.Sprintf("%v", e))
	assert.Equal(t, "FORMAT_LEAF: failed on db1", fmt.Sprintf("%s", e))
	assert.Equal(t, `"FORMAT_LEAF: failed on db1"`, fmt.Sprintf("%q", e))
	assert.Equal(t, "%!d(FORMAT_LEAF: failed on db1)", fmt.Sprintf("%d", e))
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	e := formatLeaf.New(map[string]any{"host": "db1", "attempt": 2}, cause)

	out := fmt.Sprintf("%+v", e)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, `code=FORMAT_LEAF type=FormatLeaf msg="failed on db1"`, lines[0])
	assert.Equal(t, "lineage: FormatLeaf > FormatParent > BaseError", lines[1])
	assert.Equal(t, "details: attempt=2 host=db1", lines[2])
	assert.Equal(t, "cause: connection refused", lines[3])
	assert.Equal(t, "stack:", lines[4])
	assert.Contains(t, lines[5], "TestFormat_Verbose")
}

func TestFormat_VerboseNestedCause(t *testing.T) {
	t.Parallel()

	inner := formatLeaf.New(map[string]any{"host": "db2"})
	outer := testB.New(map[string]any{"bValue": "y"}, inner)

	out := fmt.Sprintf("%+v", outer)

	assert.Contains(t, out, `code=B_ERROR type=BError msg="B msg: y"`)
	assert.Contains(t, out, `cause: code=FORMAT_LEAF type=FormatLeaf msg="failed on db2"`)
	assert.Equal(t, 2, strings.Count(out, "\nlineage: "))
}

func TestFormat_VerboseWithoutDetails(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf("%+v", formatLeaf.New())

	assert.NotContains(t, out, "details:")
	assert.NotContains(t, out, "cause:")
}

func TestFormat_NilInstance(t *testing.T) {
	t.Parallel()

	var e *Error

	assert.Equal(t, "<nil>", fmt.Sprintf("%v", e))
	assert.Equal(t, "<nil>", fmt.Sprintf("%+v", e))
}

func TestFormat_ThroughWrapper(t *testing.T) {
	t.Parallel()

	e := formatLeaf.New(map[string]any{"host": "db1"})

	assert.Equal(t, "request: FORMAT_LEAF: failed on db1", fmt.Errorf("request: %w", e).Error())
}
