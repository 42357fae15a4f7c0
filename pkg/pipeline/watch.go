package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/moderate"
	"mercator-hq/ganymede/pkg/telemetry/logging"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// defaultDebounceInterval coalesces bursts of filesystem events into one
// reload. Editors commonly emit several WRITE events per save.
const defaultDebounceInterval = 100 * time.Millisecond

// WordlistReloader keeps a moderator's term overlay in sync with a YAML
// file on disk. Two refresh mechanisms can run together: filesystem
// notifications on the overlay file and a cron schedule as a fallback for
// filesystems where notifications are unreliable (NFS, some container
// mounts). Reloads are atomic from the moderator's point of view; a failed
// reload leaves the previous terms in place.
type WordlistReloader struct {
	path      string
	watch     bool
	schedule  string
	moderator *moderate.Moderator
	logger    *logging.Logger
	collector *metrics.Collector

	debounce *debouncer
	watcher  *fsnotify.Watcher
	cron     *cron.Cron

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWordlistReloader creates a reloader for the given moderation
// configuration. It does not touch the filesystem until Start is called.
func NewWordlistReloader(cfg *config.ModerationConfig, moderator *moderate.Moderator, logger *logging.Logger, collector *metrics.Collector) *WordlistReloader {
	return &WordlistReloader{
		path:      cfg.WordlistPath,
		watch:     cfg.Watch,
		schedule:  cfg.ReloadSchedule,
		moderator: moderator,
		logger:    logger.With("component", "pipeline.reloader"),
		collector: collector,
	}
}

// Reload reads the overlay file and applies it to the moderator. On any
// error the moderator keeps its current terms.
func (r *WordlistReloader) Reload() error {
	overlay, err := moderate.LoadOverlay(r.path)
	if err != nil {
		r.collector.RecordWordlistReload(metrics.ReloadError)
		r.logger.Error("wordlist reload failed", "path", r.path, "error", err)
		return err
	}

	r.moderator.ApplyOverlay(overlay)
	r.collector.RecordWordlistReload(metrics.ReloadSuccess)
	r.logger.Info("wordlist reloaded",
		"path", r.path,
		"profanity_terms", len(overlay.Profanity),
		"spam_patterns", len(overlay.SpamPatterns),
		"forbidden_name_terms", len(overlay.ForbiddenNameTerms),
	)
	return nil
}

// Start launches the configured refresh mechanisms. With Watch enabled it
// watches the overlay file's directory, since editors and config managers
// replace files by rename and a watch on the file itself would be lost on
// the first save. With a schedule set it also registers a cron job. Start
// returns once the mechanisms are running; it does not perform an initial
// reload (the processor loads the overlay at construction).
func (r *WordlistReloader) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("wordlist reloader already running")
	}
	if r.path == "" {
		r.logger.Info("no wordlist path configured, reloader idle")
		return nil
	}

	if r.watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		if err := watcher.Add(filepath.Dir(r.path)); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %q: %w", filepath.Dir(r.path), err)
		}

		r.watcher = watcher
		r.debounce = newDebouncer(defaultDebounceInterval)
		r.stopCh = make(chan struct{})
		r.doneCh = make(chan struct{})
		go r.watchLoop(ctx)

		r.logger.Info("wordlist watcher started", "path", r.path)
	}

	if r.schedule != "" {
		if _, err := cron.ParseStandard(r.schedule); err != nil {
			r.stopLocked()
			return fmt.Errorf("invalid reload schedule %q: %w", r.schedule, err)
		}

		r.cron = cron.New()
		if _, err := r.cron.AddFunc(r.schedule, func() {
			// Errors are already logged and counted by Reload.
			_ = r.Reload()
		}); err != nil {
			r.stopLocked()
			return fmt.Errorf("failed to schedule wordlist reload: %w", err)
		}
		r.cron.Start()

		r.logger.Info("wordlist reload scheduled", "schedule", r.schedule)
	}

	r.running = true

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// watchLoop processes filesystem events until the context is cancelled or
// Stop is called.
func (r *WordlistReloader) watchLoop(ctx context.Context) {
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !r.shouldProcessEvent(event) {
				continue
			}
			r.logger.Debug("wordlist file changed", "op", event.Op.String())
			r.debounce.trigger(func() {
				_ = r.Reload()
			})
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Error("file watcher error", "error", err)
		}
	}
}

// shouldProcessEvent filters directory events down to mutations of the
// overlay file itself. Chmod is ignored; it fires on stat-only tools and
// never changes content.
func (r *WordlistReloader) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod != 0 {
		return false
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(r.path)
}

// Stop halts the watcher and scheduler and waits for in-flight work to
// finish. Stop is idempotent.
func (r *WordlistReloader) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *WordlistReloader) stopLocked() {
	if r.stopCh != nil {
		close(r.stopCh)
		<-r.doneCh
		r.stopCh = nil
		r.doneCh = nil
	}
	if r.debounce != nil {
		r.debounce.stop()
		r.debounce = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
	if r.cron != nil {
		stopCtx := r.cron.Stop()
		<-stopCtx.Done()
		r.cron = nil
	}
	r.running = false
}

// IsRunning reports whether any refresh mechanism is active.
func (r *WordlistReloader) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// NextScheduledReload returns the next cron-driven reload time, or nil when
// no schedule is configured.
func (r *WordlistReloader) NextScheduledReload() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron == nil {
		return nil
	}
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}

// debouncer delays a callback until events stop arriving for the configured
// interval. A new trigger resets the pending timer.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
