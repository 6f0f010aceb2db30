package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "json", &buf)
	logger.Debug("stepped", "generation", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "stepped" || rec["generation"] != float64(3) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level filtering failed: %q", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatal("empty context must fall back to slog.Default")
	}
	logger := Discard()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("logger not carried by context")
	}
}
