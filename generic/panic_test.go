package generic_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhminhmr/go-generic-error/generic"
)

func recoverFrom(value any) (err generic.Error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = generic.FromPanic(recovered)
		}
	}()
	panicWith(value)
	return nil
}

func panicWith(value any) {
	panic(value)
}

func TestFromPanicValue(t *testing.T) {
	e := recoverFrom(42)
	require.NotNil(t, e)

	assert.Equal(t, generic.PanicType, e.GetType())
	assert.Equal(t, generic.SeverityCritical, e.GetSeverity())
	assert.Equal(t, "panicked: 42", e.GetMessage())
	assert.Equal(t, map[string]any{"recovered": 42}, e.GetContext())
	assert.Nil(t, e.GetPrevious())

	trace, err := e.GetTrace(0, 0)
	require.NoError(t, err)
	checkStackTrace(t, trace, "/generic_test.recoverFrom.func1")
	found := false
	for _, frame := range trace {
		if strings.HasSuffix(frame.Function, "/generic_test.panicWith") {
			found = true
		}
		assert.False(t, strings.HasPrefix(frame.Function, "runtime."), frame.Function)
	}
	assert.True(t, found, "expected the panicking frame in %+v", trace)
}

func TestFromPanicError(t *testing.T) {
	cause := errors.New("nil map")
	e := recoverFrom(cause)
	require.NotNil(t, e)

	assert.Equal(t, "panicked: nil map", e.GetMessage())
	assert.Empty(t, e.GetContext())
	require.NotNil(t, e.GetPrevious())
	assert.Equal(t, "*errors.errorString", e.GetPrevious().GetType())
	assert.True(t, errors.Is(e, e.GetPrevious()))
}

func TestFromPanicRecord(t *testing.T) {
	record := generic.New("boom")
	assert.Same(t, record, recoverFrom(record))
}

func TestFromPanicNil(t *testing.T) {
	assert.Nil(t, generic.FromPanic(nil))
}
