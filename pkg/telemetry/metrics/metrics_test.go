package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	cfg := &config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "ganymede"}
	return NewCollector(cfg, prometheus.NewRegistry())
}

func TestRecordCheck(t *testing.T) {
	c := newTestCollector(t)

	c.RecordCheck(ComponentModerator, OutcomeFlagged, 2*time.Millisecond)
	c.RecordCheck(ComponentModerator, OutcomeFlagged, 1*time.Millisecond)
	c.RecordCheck(ComponentSanitizer, OutcomeClean, 500*time.Microsecond)

	got := testutil.ToFloat64(c.checkMetrics.checksTotal.WithLabelValues(ComponentModerator, OutcomeFlagged))
	if got != 2 {
		t.Errorf("moderator flagged count = %v, want 2", got)
	}
	got = testutil.ToFloat64(c.checkMetrics.checksTotal.WithLabelValues(ComponentSanitizer, OutcomeClean))
	if got != 1 {
		t.Errorf("sanitizer clean count = %v, want 1", got)
	}
}

func TestRecordViolation(t *testing.T) {
	c := newTestCollector(t)

	c.RecordViolation("profanity")
	c.RecordViolation("profanity")
	c.RecordViolation("spam")

	if got := testutil.ToFloat64(c.checkMetrics.violationsTotal.WithLabelValues("profanity")); got != 2 {
		t.Errorf("profanity count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.checkMetrics.violationsTotal.WithLabelValues("spam")); got != 1 {
		t.Errorf("spam count = %v, want 1", got)
	}
}

func TestRecordWordlistReload(t *testing.T) {
	c := newTestCollector(t)

	c.RecordWordlistReload(ReloadSuccess)
	c.RecordWordlistReload(ReloadError)
	c.RecordWordlistReload(ReloadSuccess)

	if got := testutil.ToFloat64(c.wordlistMetrics.reloadsTotal.WithLabelValues(ReloadSuccess)); got != 2 {
		t.Errorf("success reloads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.wordlistMetrics.reloadsTotal.WithLabelValues(ReloadError)); got != 1 {
		t.Errorf("error reloads = %v, want 1", got)
	}
}

func TestDisabledCollectorRecordsNothing(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: false, Namespace: "ganymede"}
	c := NewCollector(cfg, prometheus.NewRegistry())

	c.RecordCheck(ComponentAnalyzer, OutcomeFlagged, time.Millisecond)
	c.RecordViolation("spam")
	c.ObserveContentScore(40)
	c.ObserveSuspicionScore(0.9)
	c.RecordWordlistReload(ReloadSuccess)

	if got := testutil.ToFloat64(c.checkMetrics.checksTotal.WithLabelValues(ComponentAnalyzer, OutcomeFlagged)); got != 0 {
		t.Errorf("disabled collector recorded checks: %v", got)
	}
	if got := testutil.ToFloat64(c.checkMetrics.violationsTotal.WithLabelValues("spam")); got != 0 {
		t.Errorf("disabled collector recorded violations: %v", got)
	}
}

func TestHandlerExposition(t *testing.T) {
	c := newTestCollector(t)
	c.RecordCheck(ComponentAnalyzer, OutcomeFlagged, time.Millisecond)
	c.ObserveContentScore(60)
	c.ObserveSuspicionScore(0.7)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading scrape body: %v", err)
	}

	out := string(body)
	for _, want := range []string{
		"ganymede_checks_total",
		"ganymede_content_score",
		"ganymede_suspicion_score",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition missing %s:\n%s", want, out)
		}
	}
}
