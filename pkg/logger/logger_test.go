package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")

	log.Critical("store unavailable")
	if !strings.Contains(buf.String(), "level=CRITICAL") {
		t.Fatalf("expected CRITICAL level, got %q", buf.String())
	}
}

func TestNoticeMarksDegraded(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json").With("service", "trip-planner")

	log.Notice("dashboard.build: read failed", errors.New("timeout"), "op", "list votes")
	out := buf.String()
	if !strings.Contains(out, `"degraded":true`) || !strings.Contains(out, `"service":"trip-planner"`) {
		t.Fatalf("unexpected output %q", out)
	}

	buf.Reset()
	log.Notice("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to be skipped, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if parseLevel("", "development") != slog.LevelDebug {
		t.Fatalf("expected debug in development")
	}
	if parseLevel("", "production") != slog.LevelInfo {
		t.Fatalf("expected info in production")
	}
	if parseLevel("fatal", "production") != LevelCritical {
		t.Fatalf("expected critical")
	}
	if parseFormat("", "development") != "text" || parseFormat("", "production") != "json" {
		t.Fatalf("unexpected default formats")
	}
}
