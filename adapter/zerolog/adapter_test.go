package zerologadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/loglist"
	"github.com/trickstertwo/loglist/xlog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestZerologAdapter_JSON_EmitsTSAndFields(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf)) // JSON by default

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	a.Log(&xlog.Entry{
		At:      at,
		Name:    "payments",
		Level:   xlog.LevelWarn,
		Message: "state changed",
		Cause:   errors.New("boom"),
		Fields: []xlog.Field{
			xlog.Str("from", "old"),
			xlog.Int64("count", 2),
			xlog.Dur("dur", time.Millisecond),
		},
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	m := lines[0]
	// "level" and "message" are zerolog defaults
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "state changed", m["message"])
	assert.Equal(t, at.Format(time.RFC3339Nano), m["ts"])
	assert.Equal(t, "payments", m["logger"])
	assert.Equal(t, "boom", m["error"])
	assert.Equal(t, "old", m["from"])
	assert.Equal(t, float64(2), m["count"])
	// zerolog encodes durations as milliseconds by default
	assert.Equal(t, float64(1), m["dur"])
}

func TestZerologAdapter_WithBoundFields(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf)).With([]xlog.Field{
		xlog.Str("svc", "api"),
		xlog.Str("ver", "1.0.0"),
	})

	a.Log(&xlog.Entry{
		At:      time.Unix(0, 0).UTC(),
		Level:   xlog.LevelInfo,
		Message: "ok",
		Fields:  []xlog.Field{xlog.Str("path", "/healthz")},
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "api", lines[0]["svc"])
	assert.Equal(t, "1.0.0", lines[0]["ver"])
	assert.Equal(t, "/healthz", lines[0]["path"])
}

func TestUse_WithSettings(t *testing.T) {
	s, err := xlog.ParseConfig([]byte("min_level: error\nlevels:\n  jobs: trace\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	f := Use(Config{Writer: &buf, Settings: &s})
	list := loglist.Capture(t, f)

	f.Logger("jobs").Trace().Msg("picked up")
	f.Logger("http").Warn().Msg("dropped")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "trace", lines[0]["level"])
	assert.Equal(t, "jobs", lines[0]["logger"])

	require.Equal(t, 1, list.Len())
	loglist.ShouldHaveTraceValue(t, list, "picked up")
}
