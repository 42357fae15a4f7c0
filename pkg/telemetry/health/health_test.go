package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckLiveness(t *testing.T) {
	checker := New(0)

	status := checker.CheckLiveness(context.Background())
	if status.Status != StatusOK {
		t.Errorf("liveness status = %q, want %q", status.Status, StatusOK)
	}
	if status.Timestamp.IsZero() {
		t.Error("liveness timestamp is zero")
	}
}

func TestCheckReadiness_NoChecks(t *testing.T) {
	checker := New(0)

	status := checker.CheckReadiness(context.Background())
	if status.Status != StatusReady {
		t.Errorf("status = %q, want %q", status.Status, StatusReady)
	}
}

func TestCheckReadiness_AllHealthy(t *testing.T) {
	checker := New(0)
	checker.RegisterCheck("config", func(ctx context.Context) error { return nil })
	checker.RegisterCheck("wordlist", func(ctx context.Context) error { return nil })

	status := checker.CheckReadiness(context.Background())
	if status.Status != StatusReady {
		t.Errorf("status = %q, want %q", status.Status, StatusReady)
	}
	if len(status.Checks) != 2 {
		t.Errorf("expected 2 check results, got %d", len(status.Checks))
	}
	for name, result := range status.Checks {
		if result.Status != StatusOK {
			t.Errorf("check %q status = %q", name, result.Status)
		}
	}
}

func TestCheckReadiness_Degraded(t *testing.T) {
	checker := New(0)
	checker.RegisterCheck("config", func(ctx context.Context) error { return nil })
	checker.RegisterCheck("wordlist", func(ctx context.Context) error {
		return errors.New("overlay unreadable")
	})

	status := checker.CheckReadiness(context.Background())
	if status.Status != StatusDegraded {
		t.Errorf("status = %q, want %q", status.Status, StatusDegraded)
	}
	if status.Checks["wordlist"].Message != "overlay unreadable" {
		t.Errorf("message = %q", status.Checks["wordlist"].Message)
	}
}

func TestCheckReadiness_Timeout(t *testing.T) {
	checker := New(20 * time.Millisecond)
	checker.RegisterCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	status := checker.CheckReadiness(context.Background())
	if status.Status != StatusDegraded {
		t.Errorf("status = %q, want %q", status.Status, StatusDegraded)
	}
}

func TestUnregisterCheck(t *testing.T) {
	checker := New(0)
	checker.RegisterCheck("config", func(ctx context.Context) error { return nil })
	checker.UnregisterCheck("config")

	if names := checker.ListChecks(); len(names) != 0 {
		t.Errorf("checks still registered: %v", names)
	}
}

func TestLivenessHandler(t *testing.T) {
	checker := New(0)
	handler := checker.LivenessHandler()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status code = %d", rec.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if status.Status != StatusOK {
		t.Errorf("body status = %q", status.Status)
	}
}

func TestLivenessHandler_MethodNotAllowed(t *testing.T) {
	checker := New(0)
	handler := checker.LivenessHandler()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status code = %d", rec.Code)
	}
}

func TestReadinessHandler_Unavailable(t *testing.T) {
	checker := New(0)
	checker.RegisterCheck("wordlist", func(ctx context.Context) error {
		return errors.New("overlay unreadable")
	})

	rec := httptest.NewRecorder()
	checker.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", rec.Code)
	}
}

func TestVersionHandler(t *testing.T) {
	handler := VersionHandler("1.2.3", "abc123", "2026-08-31")

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	var info VersionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if info.Version != "1.2.3" || info.Commit != "abc123" {
		t.Errorf("unexpected version info: %+v", info)
	}
	if info.GoVersion == "" {
		t.Error("go version missing")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, New(0), "1.0.0", "abc", "2026-08-31")

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s status code = %d", path, rec.Code)
		}
	}
}
