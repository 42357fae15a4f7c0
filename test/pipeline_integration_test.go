//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/server"
	"mercator-hq/ganymede/pkg/telemetry/logging"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

func newIntegrationServer(t *testing.T, wordlistPath string) *server.Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Server.ListenAddress = "127.0.0.1:0"
	if wordlistPath != "" {
		cfg.Moderation.WordlistPath = wordlistPath
		cfg.Moderation.Watch = true
	}

	logger, err := logging.New(logging.Config{Level: "error", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	srv, err := server.NewServer(cfg, logger, collector, server.BuildInfo{Version: "integration"})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return srv
}

func postJSON(t *testing.T, client *http.Client, url, body string) map[string]any {
	t.Helper()

	resp, err := client.Post(url, "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

// TestPipelineEndToEnd exercises the full HTTP surface against a live
// handler stack.
func TestPipelineEndToEnd(t *testing.T) {
	srv := newIntegrationServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	client := ts.Client()

	t.Run("sanitize strips attack vectors", func(t *testing.T) {
		out := postJSON(t, client, ts.URL+"/v1/sanitize",
			`{"text":"<script>alert(1)</script>hello","level":"standard"}`)
		sanitized, _ := out["sanitized"].(string)
		if strings.Contains(strings.ToLower(sanitized), "script") {
			t.Errorf("sanitized = %q", sanitized)
		}
	})

	t.Run("moderate flags spam", func(t *testing.T) {
		out := postJSON(t, client, ts.URL+"/v1/moderate",
			`{"text":"check out my insta for more"}`)
		if appropriate, _ := out["appropriate"].(bool); appropriate {
			t.Error("spam text passed moderation")
		}
	})

	t.Run("profile analysis flags empty profile", func(t *testing.T) {
		out := postJSON(t, client, ts.URL+"/v1/profile/analyze",
			`{"name":"7777777","age":22}`)
		if suspicious, _ := out["suspicious"].(bool); !suspicious {
			t.Errorf("profile not flagged, response %v", out)
		}
	})

	t.Run("metrics exposed after traffic", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/metrics")
		if err != nil {
			t.Fatalf("metrics request failed: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "ganymede_checks_total") {
			t.Error("metrics exposition missing check counter")
		}
	})
}

// TestWordlistReloadEndToEnd verifies that editing the overlay file changes
// moderation behavior on a running server.
func TestWordlistReloadEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlist.yaml")
	if err := os.WriteFile(path, []byte("profanity: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write wordlist: %v", err)
	}

	srv := newIntegrationServer(t, path)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	client := ts.Client()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()
	defer func() {
		srv.RequestShutdown()
		select {
		case <-errChan:
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down")
		}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !srv.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	out := postJSON(t, client, ts.URL+"/v1/moderate", `{"text":"what a flibber move"}`)
	if appropriate, _ := out["appropriate"].(bool); !appropriate {
		t.Fatal("term flagged before overlay update")
	}

	if err := os.WriteFile(path, []byte("profanity:\n  - flibber\n"), 0o644); err != nil {
		t.Fatalf("failed to update wordlist: %v", err)
	}

	reloadDeadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(reloadDeadline) {
		out := postJSON(t, client, ts.URL+"/v1/moderate", `{"text":"what a flibber move"}`)
		if appropriate, _ := out["appropriate"].(bool); !appropriate {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("overlay update not picked up")
}
