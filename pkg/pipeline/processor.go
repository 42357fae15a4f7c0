package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/fakeprofile"
	"mercator-hq/ganymede/pkg/moderate"
	"mercator-hq/ganymede/pkg/sanitize"
	"mercator-hq/ganymede/pkg/telemetry/logging"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// Processor orchestrates the content safety components. It owns a shared
// moderator instance (so overlay reloads are visible to every check), a
// profile analyzer, and the default sanitization level. Processors are safe
// for concurrent use.
type Processor struct {
	level     sanitize.Level
	moderator *moderate.Moderator
	analyzer  *fakeprofile.Analyzer
	logger    *logging.Logger
	collector *metrics.Collector
}

// TextResult is the combined outcome of sanitizing and moderating a piece
// of text. Sanitized is the attack-stripped input; the moderation fields
// describe the sanitized text, not the raw input.
type TextResult struct {
	// Sanitized is the input after sanitization at the default level.
	Sanitized string

	// Appropriate is true when no violations were detected.
	Appropriate bool

	// Violations lists the detected violation types in taxonomy order.
	Violations []moderate.Violation

	// Score is the content quality score in [0,100].
	Score int

	// Filtered is the sanitized text with profane tokens masked.
	Filtered string
}

// NewProcessor creates a processor from the given configuration. The
// analyzer's photo checks use neutral defaults; callers that supply real
// plugin implementations should use NewProcessorWithChecks. A nil logger or
// collector is replaced with an inert one.
func NewProcessor(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector) (*Processor, error) {
	return NewProcessorWithChecks(cfg, logger, collector, fakeprofile.Checks{})
}

// NewProcessorWithChecks creates a processor with pluggable photo checks
// wired into the profile analyzer.
func NewProcessorWithChecks(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector, checks fakeprofile.Checks) (*Processor, error) {
	level, err := sanitize.ParseLevel(cfg.Sanitizer.DefaultLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid sanitizer level: %w", err)
	}

	if logger == nil {
		logger, err = logging.New(logging.Config{
			Level:     config.DefaultLoggingLevel,
			Format:    config.DefaultLoggingFormat,
			RedactPII: true,
			Writer:    io.Discard,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback logger: %w", err)
		}
	}
	if collector == nil {
		collector = metrics.NewCollector(&config.MetricsConfig{}, nil)
	}

	moderator := moderate.New()
	if cfg.Moderation.WordlistPath != "" {
		overlay, err := moderate.LoadOverlay(cfg.Moderation.WordlistPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load wordlist overlay: %w", err)
		}
		moderator.ApplyOverlay(overlay)
	}

	analyzer := fakeprofile.NewAnalyzer(fakeprofile.Options{
		Checks:        checks,
		PluginTimeout: cfg.Analyzer.PluginTimeout,
	})

	return &Processor{
		level:     level,
		moderator: moderator,
		analyzer:  analyzer,
		logger:    logger.With("component", "pipeline"),
		collector: collector,
	}, nil
}

// Moderator returns the shared moderator instance. The wordlist reloader
// uses it to apply overlay updates.
func (p *Processor) Moderator() *moderate.Moderator {
	return p.moderator
}

// DefaultLevel returns the configured default sanitization level.
func (p *Processor) DefaultLevel() sanitize.Level {
	return p.level
}

// Sanitize strips attack vectors from text at the given level.
func (p *Processor) Sanitize(ctx context.Context, text string, level sanitize.Level) string {
	start := time.Now()
	sanitized := sanitize.Sanitize(text, level)

	outcome := metrics.OutcomeClean
	if sanitized != text {
		outcome = metrics.OutcomeFlagged
	}
	p.collector.RecordCheck(metrics.ComponentSanitizer, outcome, time.Since(start))

	p.logger.DebugContext(ctx, "sanitized text",
		"level", level.String(),
		"input_len", len(text),
		"output_len", len(sanitized),
		"modified", sanitized != text,
	)
	return sanitized
}

// CheckText sanitizes text at the default level and moderates the result.
func (p *Processor) CheckText(ctx context.Context, text string) TextResult {
	start := time.Now()

	sanitized := sanitize.Sanitize(text, p.level)
	violations := p.moderator.Violations(sanitized)
	score := p.moderator.Score(sanitized)
	filtered := p.moderator.FilterProfanity(sanitized)

	outcome := metrics.OutcomeClean
	if len(violations) > 0 {
		outcome = metrics.OutcomeFlagged
	}
	p.collector.RecordCheck(metrics.ComponentModerator, outcome, time.Since(start))
	p.collector.ObserveContentScore(score)
	for _, v := range violations {
		p.collector.RecordViolation(v.String())
	}

	if len(violations) > 0 {
		p.logger.InfoContext(ctx, "content flagged",
			"violations", violationNames(violations),
			"score", score,
		)
	} else {
		p.logger.DebugContext(ctx, "content clean", "score", score)
	}

	return TextResult{
		Sanitized:   sanitized,
		Appropriate: len(violations) == 0,
		Violations:  violations,
		Score:       score,
		Filtered:    filtered,
	}
}

// CheckName validates a display name against the moderation rules.
func (p *Processor) CheckName(ctx context.Context, name string) moderate.NameValidation {
	start := time.Now()
	result := p.moderator.ValidateName(name)

	outcome := metrics.OutcomeClean
	if !result.Valid {
		outcome = metrics.OutcomeFlagged
	}
	p.collector.RecordCheck(metrics.ComponentModerator, outcome, time.Since(start))

	if !result.Valid {
		p.logger.InfoContext(ctx, "name rejected", "reason", result.Reason)
	}
	return result
}

// CheckProfile scores a profile snapshot for fake profile signals.
func (p *Processor) CheckProfile(ctx context.Context, profile fakeprofile.Profile) fakeprofile.Analysis {
	start := time.Now()
	analysis := p.analyzer.AnalyzeProfile(ctx, profile)

	outcome := metrics.OutcomeClean
	if analysis.Suspicious {
		outcome = metrics.OutcomeFlagged
	}
	p.collector.RecordCheck(metrics.ComponentAnalyzer, outcome, time.Since(start))
	p.collector.ObserveSuspicionScore(analysis.Score)

	if analysis.Suspicious {
		p.logger.InfoContext(ctx, "profile flagged",
			"score", analysis.Score,
			"indicators", len(analysis.Indicators),
			"recommendation", analysis.Recommendation.String(),
		)
	}
	return analysis
}

// CheckBehavior scores an activity snapshot for automated behavior signals.
func (p *Processor) CheckBehavior(ctx context.Context, snapshot fakeprofile.BehaviorSnapshot) fakeprofile.BehaviorAnalysis {
	start := time.Now()
	analysis := p.analyzer.AnalyzeBehavior(snapshot)

	outcome := metrics.OutcomeClean
	if analysis.Suspicious {
		outcome = metrics.OutcomeFlagged
	}
	p.collector.RecordCheck(metrics.ComponentAnalyzer, outcome, time.Since(start))
	p.collector.ObserveSuspicionScore(analysis.Score)

	if analysis.Suspicious {
		p.logger.InfoContext(ctx, "behavior flagged",
			"score", analysis.Score,
			"indicators", len(analysis.Indicators),
		)
	}
	return analysis
}

func violationNames(violations []moderate.Violation) []string {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.String()
	}
	return names
}
