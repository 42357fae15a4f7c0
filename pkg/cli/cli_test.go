package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("server.listen_address", "is required")
	if !strings.Contains(err.Error(), "server.listen_address") {
		t.Errorf("Error() = %q, want field name", err.Error())
	}

	bare := NewConfigError("", "failed to load config")
	if strings.Contains(bare.Error(), " in ") {
		t.Errorf("Error() = %q, want no field clause", bare.Error())
	}
}

func TestInputError(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")

	err := NewInputError("profile.json", underlying)
	if !strings.Contains(err.Error(), "profile.json") {
		t.Errorf("Error() = %q, want source name", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("expected Unwrap to reach the underlying error")
	}

	bare := NewInputError("", underlying)
	if strings.Contains(bare.Error(), "reading") {
		t.Errorf("Error() = %q, want no source clause", bare.Error())
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewCommandError("moderate", cause)

	if !errors.Is(err, cause) {
		t.Error("CommandError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "moderate") {
		t.Errorf("Error() = %q, want command name", err.Error())
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"", FormatText, false},
		{"yaml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

type renderable struct {
	Score int `json:"score"`
}

func (r renderable) RenderText() string {
	return "Score: 42"
}

func TestTextFormatter(t *testing.T) {
	f := NewFormatter(FormatText)

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, renderable{Score: 42}); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if got := buf.String(); got != "Score: 42\n" {
		t.Errorf("output = %q, want rendered text", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewFormatter(FormatJSON)

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, renderable{Score: 42}); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}

	var out map[string]int
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out["score"] != 42 {
		t.Errorf("score = %d, want 42", out["score"])
	}
}

func TestProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf)

	p.Start(10)
	p.Update(5, 2)
	p.Finish()

	out := buf.String()
	if !strings.Contains(out, "100.0%") {
		t.Errorf("output %q missing completion percentage", out)
	}
	if !strings.Contains(out, "(10/10)") {
		t.Errorf("output %q missing final count", out)
	}
	if !strings.Contains(out, "2 flagged") {
		t.Errorf("output %q missing flagged count", out)
	}
}

func TestProgressReporter_ZeroTotalSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf)

	p.Start(0)
	p.Update(0, 0)

	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing for zero total", buf.String())
	}
}

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()
	select {
	case <-ctx.Done():
		t.Error("context cancelled without a signal")
	default:
	}
}

func TestHandleSignals_CancelsOnFirstSignal(t *testing.T) {
	sigChan := make(chan os.Signal, 2)
	ctx := handleSignals(sigChan, func(int) {
		t.Error("exit called after a single signal")
	})

	sigChan <- syscall.SIGTERM

	select {
	case <-ctx.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("context not cancelled after signal")
	}
}

func TestHandleSignals_SecondSignalExits(t *testing.T) {
	sigChan := make(chan os.Signal, 2)
	exitCode := make(chan int, 1)
	ctx := handleSignals(sigChan, func(code int) {
		exitCode <- code
	})

	sigChan <- syscall.SIGINT
	<-ctx.Done()
	sigChan <- syscall.SIGINT

	select {
	case code := <-exitCode:
		if code != interruptExitCode {
			t.Errorf("exit code = %d, want %d", code, interruptExitCode)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("exit not called after second signal")
	}
}
