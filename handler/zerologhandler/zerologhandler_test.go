package zerologhandler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/philipp01105/nlogd/core"
)

func TestZerologHandler_Log(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf))

	err := h.Log("user {user}", core.Context{
		core.KeyLevel:     core.EmergencyLevel,
		core.KeyFormatted: "user alice",
		"user":            "alice",
		"attempts":        3,
	})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	want := map[string]any{
		"level":    "panic",
		"severity": "emergency",
		"message":  "user alice",
		"user":     "alice",
		"attempts": float64(3),
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestZerologHandler_LevelDisabled(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.WarnLevel))

	h.Log("quiet", core.Context{core.KeyLevel: core.DebugLevel})
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got: %s", buf.String())
	}
}

func TestToZerolog(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zerolog.Level
	}{
		{core.EmergencyLevel, zerolog.PanicLevel},
		{core.CriticalLevel, zerolog.FatalLevel},
		{core.ErrorLevel, zerolog.ErrorLevel},
		{core.NoticeLevel, zerolog.InfoLevel},
		{core.DebugLevel, zerolog.DebugLevel},
		{core.Level(-1), zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ToZerolog(tt.level); got != tt.want {
			t.Errorf("ToZerolog(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
