package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		emit  func(l *SlogLogger, ctx context.Context)
	}{
		{"DEBUG", func(l *SlogLogger, ctx context.Context) { l.Debug(ctx, "msg-DEBUG", "n", 1) }},
		{"INFO", func(l *SlogLogger, ctx context.Context) { l.Info(ctx, "msg-INFO", "n", 1) }},
		{"WARN", func(l *SlogLogger, ctx context.Context) { l.Warn(ctx, "msg-WARN", "n", 1) }},
		{"ERROR", func(l *SlogLogger, ctx context.Context) { l.Error(ctx, "msg-ERROR", "n", 1) }},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log, buf := newTestLogger(t)
			tc.emit(log, context.Background())

			out := buf.String()
			if !strings.Contains(out, "level="+tc.level) || !strings.Contains(out, "msg=msg-"+tc.level) {
				t.Fatalf("expected a level=%s line in output:\n%s", tc.level, out)
			}
			if !strings.Contains(out, "n=1") {
				t.Fatalf("expected attribute n=1 in output:\n%s", out)
			}
		})
	}
}

func TestNewJSON_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf)

	log.Info(context.Background(), "started", "addr", ":8080")

	out := buf.String()
	for _, s := range []string{`"msg":"started"`, `"addr":":8080"`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log2 := log.With("request_id", "123", "module", "lists")
	log2.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "request_id=123", "module=lists", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}
