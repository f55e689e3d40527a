package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestFromSlogWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := FromSlog(slog.New(handler)).With("widget", "textbox")
	logger.Debug("resolved", "field", "title")

	out := buf.String()
	if !strings.Contains(out, "widget=textbox") || !strings.Contains(out, "field=title") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestFromSlogNilFallsBack(t *testing.T) {
	if FromSlog(nil) == nil {
		t.Fatal("FromSlog(nil) returned nil")
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop().With("k", "v")
	logger.Debug("ignored")
	logger.Error("ignored")
}
