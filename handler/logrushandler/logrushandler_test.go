package logrushandler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nlogd/core"
)

func newTestLogger(buf *bytes.Buffer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l
}

func TestLogrusHandler_Log(t *testing.T) {
	var buf bytes.Buffer
	h := New(newTestLogger(&buf, logrus.DebugLevel))

	err := h.Log("order {id}", core.Context{
		core.KeyLevel:     core.AlertLevel,
		core.KeyFormatted: "order 42",
		"id":              42,
	})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if got["level"] != "fatal" {
		t.Errorf("level = %v, want fatal", got["level"])
	}
	if got["severity"] != "alert" {
		t.Errorf("severity = %v, want alert", got["severity"])
	}
	if got["msg"] != "order 42" {
		t.Errorf("msg = %v, want order 42", got["msg"])
	}
	if got["id"] != float64(42) {
		t.Errorf("id = %v, want 42", got["id"])
	}
}

func TestLogrusHandler_LevelDisabled(t *testing.T) {
	var buf bytes.Buffer
	h := New(newTestLogger(&buf, logrus.WarnLevel))

	h.Log("quiet", core.Context{core.KeyLevel: core.InfoLevel})
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got: %s", buf.String())
	}
}

func TestToLogrus(t *testing.T) {
	for _, l := range core.Levels() {
		if got := ToLogrus(l); got == logrus.PanicLevel {
			t.Errorf("ToLogrus(%v) = panic", l)
		}
	}
	if got := ToLogrus(core.WarningLevel); got != logrus.WarnLevel {
		t.Errorf("ToLogrus(warning) = %v, want warning", got)
	}
}
