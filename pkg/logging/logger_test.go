package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)
	logger.Info("problem generated", ProblemID("p1"), Operations(4))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != "INFO" || entry.Message != "problem generated" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Fields["problem_id"] != "p1" {
		t.Errorf("problem_id = %v", entry.Fields["problem_id"])
	}
	if entry.Fields["operations"] != float64(4) {
		t.Errorf("operations = %v", entry.Fields["operations"])
	}
	if _, err := time.Parse(time.RFC3339Nano, entry.Time); err != nil {
		t.Errorf("timestamp not RFC3339Nano: %q", entry.Time)
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	if entries := decodeLines(t, &buf); len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	logger.SetLevel(DebugLevel)
	buf.Reset()
	logger.Debug("now kept")
	if entries := decodeLines(t, &buf); len(entries) != 1 {
		t.Fatalf("expected 1 entry after SetLevel, got %d", len(entries))
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)
	child := logger.With(Component("structure"), Seed(42))
	child.Info("graph built", Nodes(6))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Fields
	if fields["component"] != "structure" {
		t.Errorf("component = %v", fields["component"])
	}
	if fields["seed"] != float64(42) {
		t.Errorf("seed = %v", fields["seed"])
	}
	if fields["nodes"] != float64(6) {
		t.Errorf("nodes = %v", fields["nodes"])
	}

	// Parent must not inherit the child's fields.
	buf.Reset()
	logger.Info("plain")
	if fields := decodeLines(t, &buf)[0].Fields; fields != nil {
		t.Errorf("parent picked up child fields: %v", fields)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"ERROR":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestErrorField(t *testing.T) {
	if f := Error(errors.New("boom")); f.Key != "error" || f.Value != "boom" {
		t.Errorf("Error field = %+v", f)
	}
	if f := Error(nil); f.Value != nil {
		t.Errorf("nil error should produce nil value, got %v", f.Value)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored", String("k", "v"))
	if child := logger.With(Component("x")); child == nil {
		t.Fatal("With should return a usable logger")
	}
}
