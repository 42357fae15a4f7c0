package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger, &buf
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	if err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	logger.Info("check completed", "component", "moderator", "score", 85)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "check completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["component"] != "moderator" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["score"] != float64(85) {
		t.Errorf("score = %v", entry["score"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "warn", Format: "json"})

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("messages below level were written: %s", buf.String())
	}

	logger.Warn("warn message")
	if buf.Len() == 0 {
		t.Error("warn message was filtered out")
	}
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "text"})

	logger.Info("check completed", "component", "sanitizer")

	out := buf.String()
	if !strings.Contains(out, "msg=") || !strings.Contains(out, "component=sanitizer") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestLogger_RedactsPII(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json", RedactPII: true})

	logger.Info("violation detected",
		"snippet", "contact me at jane.doe@example.com or 555-123-4567",
	)

	out := buf.String()
	if strings.Contains(out, "jane.doe@example.com") {
		t.Errorf("email leaked into log output: %s", out)
	}
	if strings.Contains(out, "555-123-4567") {
		t.Errorf("phone number leaked into log output: %s", out)
	}
}

func TestLogger_RedactionDisabled(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	logger.Info("violation detected", "snippet", "jane.doe@example.com")

	if !strings.Contains(buf.String(), "jane.doe@example.com") {
		t.Errorf("redaction applied while disabled: %s", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	child := logger.With("component", "analyzer")
	child.Info("profile scored")

	if !strings.Contains(buf.String(), `"component":"analyzer"`) {
		t.Errorf("inherited field missing: %s", buf.String())
	}
}

func TestLogger_ContextFields(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-42")
	ctx = WithUser(ctx, "u-7")
	ctx = WithComponent(ctx, "moderator")

	logger.InfoContext(ctx, "check completed")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"user":"u-7"`, `"component":"moderator"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in output: %s", want, out)
		}
	}
}

func TestLogger_WithContext(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-99")
	logger.WithContext(ctx).Info("processing")

	if !strings.Contains(buf.String(), `"request_id":"req-99"`) {
		t.Errorf("context field missing: %s", buf.String())
	}
}

func BenchmarkLogger_Disabled(b *testing.B) {
	logger, err := New(Config{Level: "error", Format: "json", Writer: &bytes.Buffer{}})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("check completed", "component", "moderator")
	}
}
