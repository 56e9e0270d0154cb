package xgxsubtype

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fBucket = Field[string]("bucket")
	fCount  = Field[int]("count")
	fCode   = Field[Code]("code")
	fMarker = Field[bool]("bError")
)

func TestTypedField_Get(t *testing.T) {
	t.Parallel()

	e := testB.New(map[string]any{"bucket": "photos", "count": 2})
	wrapped := fmt.Errorf("ctx: %w", e)

	bucket, ok := fBucket.Get(wrapped)
	require.True(t, ok)
	assert.Equal(t, "photos", bucket)

	count, ok := fCount.Get(e)
	require.True(t, ok)
	assert.Equal(t, 2, count)

	code, ok := fCode.Get(e)
	require.True(t, ok)
	assert.Equal(t, Code("B_ERROR"), code)

	marked, ok := fMarker.Get(e)
	require.True(t, ok)
	assert.True(t, marked)

	assert.Equal(t, "bucket", fBucket.Key())
}

func TestTypedField_GetMisses(t *testing.T) {
	t.Parallel()

	e := testB.New(map[string]any{"bucket": 7})

	_, ok := fBucket.Get(e)
	assert.False(t, ok, "wrong dynamic type")

	_, ok = fCount.Get(e)
	assert.False(t, ok, "absent")

	_, ok = fBucket.Get(io.EOF)
	assert.False(t, ok, "no instance")

	_, ok = fBucket.Get(nil)
	assert.False(t, ok, "nil error")
}

func TestTypedField_MustGet(t *testing.T) {
	t.Parallel()

	e := testB.New(map[string]any{"bucket": "photos", "count": "two"})

	assert.Equal(t, "photos", fBucket.MustGet(e))

	assert.PanicsWithError(t,
		`xgxsubtype.TypedField[int]("count"): wrong dynamic type (string)`,
		func() { fCount.MustGet(e) })
	assert.PanicsWithError(t,
		`xgxsubtype.TypedField[string]("missing"): property missing on BError`,
		func() { Field[string]("missing").MustGet(e) })
	assert.PanicsWithError(t,
		`xgxsubtype.TypedField[string]("bucket"): no instance in EOF`,
		func() { fBucket.MustGet(io.EOF) })
}
