package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ProgressReporter reports progress for batch content checks. Update takes
// the number of lines processed so far and how many of them were flagged.
type ProgressReporter interface {
	Start(total int64)
	Update(current, flagged int64)
	Finish()
	Error(err error)
}

// BatchProgress renders a single-line progress bar with a running flagged
// count and throughput in lines per second.
type BatchProgress struct {
	mu      sync.Mutex
	total   int64
	current int64
	flagged int64
	started time.Time
	writer  io.Writer
}

// NewProgressReporter creates a progress reporter that writes to w.
// If w is nil, it defaults to os.Stderr so the bar never mixes with
// formatted command output on stdout.
func NewProgressReporter(w io.Writer) ProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &BatchProgress{
		writer: w,
	}
}

// Start initializes the reporter with the total number of lines to check.
func (p *BatchProgress) Start(total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.flagged = 0
	p.started = time.Now()

	p.render()
}

// Update records how many lines have been checked and how many were flagged.
func (p *BatchProgress) Update(current, flagged int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = current
	p.flagged = flagged
	p.render()
}

// Finish marks the batch as complete.
func (p *BatchProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = p.total
	p.render()
	fmt.Fprintln(p.writer)
}

// Error reports an error during the batch.
func (p *BatchProgress) Error(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.writer, "\n✗ Error: %v\n", err)
}

func (p *BatchProgress) render() {
	if p.total == 0 {
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	barWidth := 40
	filled := int(float64(barWidth) * percent / 100)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	elapsed := time.Since(p.started)
	rate := float64(p.current) / elapsed.Seconds()

	fmt.Fprintf(p.writer, "\rChecking: [%s] %.1f%% (%d/%d) %d flagged, %.1f lines/s",
		bar, percent, p.current, p.total, p.flagged, rate)
}
