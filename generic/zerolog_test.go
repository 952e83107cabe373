package generic_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhminhmr/go-generic-error/generic"
)

func logError(t *testing.T, err error) map[string]any {
	t.Helper()
	var buffer bytes.Buffer
	logger := zerolog.New(&buffer)
	logger.Error().Err(err).Msg("failed")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
	field, ok := line[zerolog.ErrorFieldName].(map[string]any)
	require.True(t, ok, "expected an object, got %v", line)
	return field
}

func TestMarshalZerologObject(t *testing.T) {
	root := generic.New("connection refused", generic.WithCode(111), generic.WithType("network"))
	e := generic.New("query failed",
		generic.WithPrevious(root),
		generic.WithSeverity(generic.SeverityCritical),
		generic.WithFile("repository.go"),
		generic.WithLine(12),
		generic.WithContext(map[string]any{"table": "users"}),
		generic.WithTrace(generic.StackFrames{{Function: "main.main", File: "main.go", Line: 3}}),
	)

	field := logError(t, e)

	assert.Equal(t, "query failed", field["message"])
	assert.Equal(t, generic.DefaultType, field["type"])
	assert.Equal(t, float64(0), field["code"])
	assert.Equal(t, "critical", field["severity"])
	assert.Equal(t, "repository.go", field["file"])
	assert.Equal(t, float64(12), field["line"])
	assert.Equal(t, map[string]any{"table": "users"}, field["context"])
	assert.Equal(t, []any{
		map[string]any{"function": "main.main", "file": "main.go", "line": float64(3)},
	}, field["stack_trace"])
	assert.Equal(t, []any{
		map[string]any{
			"message":  "connection refused",
			"type":     "network",
			"code":     float64(111),
			"severity": "error",
		},
	}, field["previous"])
}

func TestMarshalZerologObjectDoesNotCaptureTrace(t *testing.T) {
	e := generic.New("boom")

	field := logError(t, e)
	assert.NotContains(t, field, "stack_trace")
	assert.NotContains(t, field, "previous")
	assert.NotContains(t, field, "file")
	assert.NotContains(t, field, "context")

	trace, err := e.GetTrace(0, 0)
	require.NoError(t, err)
	checkStackTrace(t, trace, "/generic_test.TestMarshalZerologObjectDoesNotCaptureTrace")
}

func TestMarshalZerologObjectCyclicChain(t *testing.T) {
	a := &relinked{base: generic.New("a")}
	b := generic.New("b", generic.WithPrevious(a))
	a.previous = b

	field := logError(t, b)
	assert.Equal(t, "b", field["message"])
	assert.Equal(t, generic.ErrCyclicChain.Error(), field["chain_error"])
	assert.NotContains(t, field, "previous")
}

func TestMarshalZerologString(t *testing.T) {
	field := logError(t, generic.ErrCyclicChain)
	assert.Equal(t, map[string]any{"error": "generic: cyclic error chain"}, field)
}
