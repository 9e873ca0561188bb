package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message", nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN were emitted: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN and ERROR missing: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "ingest"})

	log.Error("import failed", errors.New("boom"), map[string]interface{}{"rows": 3})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry.Level != "ERROR" || entry.Message != "import failed" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Component != "ingest" {
		t.Errorf("component = %q, want ingest", entry.Component)
	}
	if entry.Error != "boom" {
		t.Errorf("error = %q, want boom", entry.Error)
	}
	if entry.Fields["rows"] != float64(3) {
		t.Errorf("fields = %+v", entry.Fields)
	}
}

func TestTextFormatIncludesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	scoped := log.WithComponent("charts")
	scoped.Info("rendered", map[string]interface{}{"kind": "bar"})

	out := buf.String()
	for _, want := range []string{"INFO", "[charts]", "rendered", "kind=bar"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestFormattedVariants(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	log.Infof("rendered %d charts in %s", 4, "12ms")
	if !strings.Contains(buf.String(), "rendered 4 charts in 12ms") {
		t.Errorf("Infof output: %s", buf.String())
	}
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	exited := -1
	log.exit = func(code int) { exited = code }

	log.Fatal("fatal condition", errors.New("broken"))
	if exited != 1 {
		t.Errorf("Fatal exit code = %d, want 1", exited)
	}
	if !strings.Contains(buf.String(), "fatal condition") {
		t.Errorf("fatal message missing: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
		ok    bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{"Warning", WARN, true},
		{"error", ERROR, true},
		{"fatal", FATAL, true},
		{"verbose", INFO, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v,%v, want %v,%v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	SetGlobalLogger(New(Config{Level: INFO, Format: TextFormat, Output: &buf}))
	Configure("debug", "json")

	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Configure did not lower the level: %s", buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("Configure did not switch to JSON: %s", buf.String())
	}
}
