package core

import (
	"reflect"
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	ctx := Context{
		KeyLevel:     WarningLevel,
		KeyMicrotime: float64(ts.Unix()),
		KeyFormatted: "hello bob",
		"user":       "bob",
		"_handler":   "console",
	}

	r := NewRecord("hello {user}", ctx)
	if r.Level != WarningLevel {
		t.Errorf("Level = %v, want warning", r.Level)
	}
	if !r.Time.Equal(ts) {
		t.Errorf("Time = %v, want %v", r.Time, ts)
	}
	if got := r.Formatted(); got != "hello bob" {
		t.Errorf("Formatted() = %q", got)
	}
	if got := r.PublicKeys(); !reflect.DeepEqual(got, []string{"user"}) {
		t.Errorf("PublicKeys() = %v", got)
	}
}

func TestNewRecord_Defaults(t *testing.T) {
	r := NewRecord("plain", nil)
	if r.Level != InfoLevel {
		t.Errorf("Level = %v, want info", r.Level)
	}
	if r.Time.IsZero() {
		t.Error("Time is zero")
	}
	if r.Formatted() != "plain" {
		t.Errorf("Formatted() = %q", r.Formatted())
	}
}
