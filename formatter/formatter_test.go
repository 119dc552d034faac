package formatter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/nlogd/core"
)

func testRecord(msg string, ctx core.Context) *core.Record {
	return &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: msg,
		Context: ctx,
	}
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	result, err := f.Format(testRecord("test message", nil))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected '[INFO]' in output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if !strings.HasPrefix(output, "2026-02-18T13:00:00Z") {
		t.Errorf("Expected RFC3339 timestamp prefix, got: %s", output)
	}
}

func TestTextFormatter_WithContext(t *testing.T) {
	f := NewTextFormatter(Config{})

	result, err := f.Format(testRecord("test", core.Context{
		"key2": 42,
		"key1": "value1",
		"_pid": 99,
	}))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "test key1=value1 key2=42") {
		t.Errorf("Expected sorted context in output, got: %s", output)
	}
	if strings.Contains(output, "_pid") {
		t.Errorf("Metadata leaked into output: %s", output)
	}
}

func TestTextFormatter_FormattedMessage(t *testing.T) {
	record := testRecord("boom {n}", core.Context{core.KeyFormatted: "boom 5", core.KeyHandler: "S"})

	out, _ := NewTextFormatter(Config{IncludeHandler: true}).Format(record)
	if !strings.Contains(string(out), "<S> boom 5") {
		t.Errorf("Expected handler and formatted message, got: %s", out)
	}

	raw, _ := NewTextFormatter(Config{RawMessage: true}).Format(record)
	if !strings.Contains(string(raw), "boom {n}") {
		t.Errorf("Expected raw message, got: %s", raw)
	}
}

func TestTextFormatter_AllLevels(t *testing.T) {
	f := NewTextFormatter(Config{})
	for _, l := range core.Levels() {
		r := testRecord("m", nil)
		r.Level = l
		out, _ := f.Format(r)
		want := "[" + strings.ToUpper(l.String()) + "]"
		if !strings.Contains(string(out), want) {
			t.Errorf("Format() for %v = %s, want %s", l, out, want)
		}
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	result, err := f.Format(testRecord("test \"message\"", nil))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "info" {
		t.Errorf("Expected level 'info', got: %v", data["level"])
	}
	if data["message"] != "test \"message\"" {
		t.Errorf("Expected message, got: %v", data["message"])
	}
}

func TestJSONFormatter_WithContext(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeHandler: true})

	result, err := f.Format(testRecord("test", core.Context{
		"str":           "value",
		"int":           42,
		"bool":          true,
		"list":          []any{"a", 1},
		"lvl":           core.WarningLevel,
		"nothing":       nil,
		core.KeyHandler: "json",
	}))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v (%s)", err, result)
	}

	if data["str"] != "value" {
		t.Errorf("Expected str='value', got: %v", data["str"])
	}
	if data["int"] != float64(42) { // JSON numbers are float64
		t.Errorf("Expected int=42, got: %v", data["int"])
	}
	if data["bool"] != true {
		t.Errorf("Expected bool=true, got: %v", data["bool"])
	}
	if list, ok := data["list"].([]interface{}); !ok || len(list) != 2 {
		t.Errorf("Expected list of 2, got: %v", data["list"])
	}
	if data["lvl"] != "warning" {
		t.Errorf("Expected lvl='warning', got: %v", data["lvl"])
	}
	if v, ok := data["nothing"]; !ok || v != nil {
		t.Errorf("Expected nothing=null, got: %v", v)
	}
	if data["handler"] != "json" {
		t.Errorf("Expected handler='json', got: %v", data["handler"])
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	record := testRecord("test message", core.Context{"key1": "value1", "key2": 42})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(record)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	record := testRecord("test message", core.Context{"key1": "value1", "key2": 42})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(record)
	}
}
