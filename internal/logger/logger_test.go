package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	return entry
}

func TestNewLogger_Entry(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("icrc7-replica")
	l.Logger = l.Output(&buf)

	l.Info().Msg("replica started")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "icrc7-replica", entry["role"])
	assert.Equal(t, "replica started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("icrc7-client")
	parent.Logger = parent.Output(&buf)

	t.Run("child keeps the role", func(t *testing.T) {
		buf.Reset()
		child := parent.GetChildLogger()
		require.NotSame(t, parent, child)

		child.Info().Msg("child")

		assert.Equal(t, "icrc7-client", decodeEntry(t, buf.Bytes())["role"])
	})

	t.Run("call logger names canister and method", func(t *testing.T) {
		buf.Reset()
		parent.ForCall("bkyz2-fmaaa-aaaaa-qaaaq-cai", "whoami").Info().Msg("call")

		entry := decodeEntry(t, buf.Bytes())
		assert.Equal(t, "bkyz2-fmaaa-aaaaa-qaaaq-cai", entry["canister_id"])
		assert.Equal(t, "whoami", entry["method"])
		assert.Equal(t, "icrc7-client", entry["role"])
	})
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	buf.Reset()
	req := httptest.NewRequest("POST", "/api/v2/canister/aaaaa-aa/query", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	require.NotNil(t, FromContext(context.Background()))
}

func TestNewClientLogger(t *testing.T) {
	t.Run("appends to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "client.log")
		require.NoError(t, os.WriteFile(logPath, []byte("{\"message\":\"earlier\"}\n"), 0o644))

		NewClientLogger("icrc7-client", logPath).Info().Msg("to file")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
		require.Len(t, lines, 2)
		entry := decodeEntry(t, lines[1])
		assert.Equal(t, "icrc7-client", entry["role"])
		assert.Equal(t, "to file", entry["message"])
	})

	t.Run("unwritable path still yields a logger", func(t *testing.T) {
		l := NewClientLogger("icrc7-client", filepath.Join(t.TempDir(), "missing", "dir", "client.log"))
		require.NotNil(t, l)
	})
}
