package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := *Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(New(&buf, level))
	return &buf
}

func TestInfoContext_AddsContextFields(t *testing.T) {
	buf := captureDefault(t, "info")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserEmailKey, "a@x.com")
	ctx = context.WithValue(ctx, ServiceKey, "api")

	InfoContext(ctx, "hello", "status", 200, "error", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "a@x.com", entry["user_email"])
	assert.Equal(t, "api", entry["service"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, "boom", entry["error"])
}

func TestDebug_FilteredByLevel(t *testing.T) {
	buf := captureDefault(t, "")

	Debug("hidden")
	assert.Zero(t, buf.Len())

	Warn("shown")
	assert.Contains(t, buf.String(), `"shown"`)
}
