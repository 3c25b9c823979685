package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitForCLI_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, "json", &buf)

	Debug("Gateway", "hidden %d", 1)
	Error("Gateway", errors.New("boom"), "request failed for %s", "list")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug entry must be filtered")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "request failed for list", rec["msg"])
	assert.Equal(t, "Gateway", rec["subsystem"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, "ERROR", rec["level"])
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Console", "filtered")
	Info("Console", "loaded %d operators", 3)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "Console", entry.Subsystem)
		assert.Equal(t, "loaded 3 operators", entry.Message)
		assert.Contains(t, entry.Format(), "[INFO] [Console] loaded 3 operators")
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %+v", entry)
	default:
	}
}

func TestLogEntryFormatWithError(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Gateway",
		Message:   "create failed",
		Err:       errors.New("connection refused"),
	}
	assert.Equal(t, "03:04:05 [ERROR] [Gateway] create failed: connection refused", e.Format())
}
