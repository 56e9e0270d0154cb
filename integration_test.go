package xgxsubtype_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxsubtype "github.com/xgx-io/xgx-subtype"
)

var (
	repoError    = xgxsubtype.Root.Subtype("RepoError")
	notFound     = repoError.Subtype("RecordNotFound", xgxsubtype.Template("{{entity}} {{id}} not found"))
	conflict     = repoError.Subtype("RecordConflict", xgxsubtype.Template("{{entity}} {{id}} changed since version {{version}}"))
	validation   = xgxsubtype.Root.Subtype("ValidationFailed", xgxsubtype.Template("{{field}}: {{reason}}"))
	fEntity      = xgxsubtype.Field[string]("entity")
	fVersion     = xgxsubtype.Field[int]("version")
	errTransient = errors.New("transient")
)

type repo struct{ rows map[string]int }

func (r *repo) load(id string) (int, error) {
	v, ok := r.rows[id]
	if !ok {
		return 0, notFound.New(map[string]any{"entity": "user", "id": id})
	}
	return v, nil
}

func (r *repo) save(id string, version int) error {
	cur, err := r.load(id)
	if err != nil {
		return fmt.Errorf("save %s: %w", id, err)
	}
	if cur != version {
		return conflict.New(map[string]any{"entity": "user", "id": id, "version": version}, errTransient)
	}
	r.rows[id] = version + 1
	return nil
}

func httpStatus(err error) int {
	var e *xgxsubtype.Error
	if !errors.As(err, &e) {
		return 500
	}
	status, serr := xgxsubtype.Switch(e, xgxsubtype.Cases[int]{
		"RecordNotFound":   func(any) int { return 404 },
		"RecordConflict":   func(any) int { return 409 },
		"RepoError":        func(any) int { return 503 },
		"ValidationFailed": func(any) int { return 400 },
	}, func(any) int { return 500 })
	if serr != nil {
		return 500
	}
	return status
}

func TestIntegration_RepositoryFlow(t *testing.T) {
	t.Parallel()

	r := &repo{rows: map[string]int{"u1": 1}}

	require.NoError(t, r.save("u1", 1))

	err := r.save("u1", 1)
	require.Error(t, err)
	assert.Equal(t, "RECORD_CONFLICT: user u1 changed since version 1", err.Error())
	assert.Equal(t, 409, httpStatus(err))
	assert.ErrorIs(t, err, repoError)
	assert.ErrorIs(t, err, errTransient)

	v, ok := fVersion.Get(err)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	err = r.save("u2", 0)
	assert.Equal(t, "save u2: RECORD_NOT_FOUND: user u2 not found", err.Error())
	assert.Equal(t, 404, httpStatus(err))
	assert.Equal(t, "user", fEntity.MustGet(err))
	assert.Equal(t, xgxsubtype.Code("RECORD_NOT_FOUND"), xgxsubtype.CodeOf(err))
}

func TestIntegration_JoinedValidationErrors(t *testing.T) {
	t.Parallel()

	err := errors.Join(
		validation.New(map[string]any{"field": "email", "reason": "required"}),
		validation.New(map[string]any{"field": "age", "reason": "negative"}),
		fs.ErrInvalid,
	)

	var fields []string
	xgxsubtype.Walk(err, func(node error) bool {
		if e, ok := node.(*xgxsubtype.Error); ok && e.IsA(validation) {
			f, _ := e.Get("field")
			fields = append(fields, f.(string))
		}
		return true
	})

	assert.Equal(t, []string{"email", "age"}, fields)
	assert.True(t, xgxsubtype.HasCode(err, "VALIDATION_FAILED"))
	assert.Equal(t, 400, httpStatus(err))
	assert.ErrorIs(t, err, fs.ErrInvalid)
	assert.False(t, xgxsubtype.IsA(err, repoError))
}

func TestIntegration_LibraryFailuresAreDispatchable(t *testing.T) {
	t.Parallel()

	failures := []error{
		repoError.New(),
		notFound.New("not details"),
		notFound.New(nil, "not a cause"),
	}
	_, dispatchErr := xgxsubtype.Switch[int](nil, nil)
	failures = append(failures, dispatchErr)
	_, declErr := repoError.Define("Message")
	failures = append(failures, declErr)

	want := []string{"abstract", "shape", "shape", "nil", "options"}
	for i, f := range failures {
		got, err := xgxsubtype.Switch(f, xgxsubtype.Cases[string]{
			"CannotInstantiateAbstract":     func(any) string { return "abstract" },
			"UnexpectedType":                func(any) string { return "shape" },
			"ThrownValueWasNullOrUndefined": func(any) string { return "nil" },
			"BadOptions":                    func(any) string { return "options" },
		})
		require.NoErrorf(t, err, "TEST[%d]", i)
		assert.Equalf(t, want[i], got, "TEST[%d]", i)
		assert.Truef(t, xgxsubtype.IsBuiltinFailure(f), "TEST[%d]", i)
	}
}

func TestIntegration_DefaultSwitchCaseKeepsSubject(t *testing.T) {
	t.Parallel()

	subject := notFound.New(map[string]any{"entity": "user", "id": "u9"})
	_, err := xgxsubtype.Switch(subject, xgxsubtype.Cases[int]{"ValidationFailed": func(any) int { return 1 }})

	require.ErrorIs(t, err, xgxsubtype.DefaultSwitchCase)
	assert.ErrorIs(t, err, notFound, "the unmatched instance is reachable as the cause")

	found, ok := xgxsubtype.Find(err, notFound)
	require.True(t, ok)
	assert.Same(t, subject, found)
}
