package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l Logger) {
	l.(*StdLogger).now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
}

func TestTextFormatIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, App: "creature-reviews", Output: &buf})
	fixedClock(l)

	l.Debug("hidden", nil)
	l.Info("cache miss", map[string]any{"key": "categories:all", "": "dropped"})

	assert.Equal(t,
		"app=creature-reviews key=categories:all level=info msg=cache miss ts=2024-01-02T03:04:05Z\n",
		buf.String())
}

func TestJSONFormatAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.With(map[string]any{"component": "sqlstore"}).Error("commit failed", map[string]any{"err": errors.New("boom")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sqlstore", entry["component"])
	assert.Equal(t, "boom", entry["err"])
	assert.Equal(t, "error", entry["level"])
}

func TestWithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Output: &buf})
	_ = parent.With(map[string]any{"child": true})

	parent.Info("x", nil)
	assert.NotContains(t, buf.String(), "child")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-1")

	WithContext(ctx, New(Options{Output: &buf})).Info("hello", nil)
	assert.True(t, strings.Contains(buf.String(), "request_id=req-1"), buf.String())
}

func TestParse(t *testing.T) {
	assert.Equal(t, Warn, ParseLevel(" WARNING "))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestNopWritesNothing(t *testing.T) {
	Nop().Error("ignored", map[string]any{"a": 1})
}
