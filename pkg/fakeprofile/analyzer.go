package fakeprofile

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"mercator-hq/ganymede/internal/textutil"
)

// Indicator weights. These are fixed scoring constants: moderation queues
// and review thresholds downstream are tuned against them, so they must not
// drift between releases.
const (
	weightNoPhotos          = 0.8
	weightSinglePhoto       = 0.4
	weightStockPhoto        = 0.6
	weightProfessionalPhoto = 0.3
	weightInconsistentFaces = 0.7
	weightHighQualityPhotos = 0.2

	weightEmptyBio   = 0.6
	weightShortBio   = 0.3
	weightGenericBio = 0.5
	weightLinkBio    = 0.4
	weightPaymentBio = 0.8
	weightEmojiBio   = 0.4
	weightBotBio     = 0.7

	weightSingleWordName  = 0.2
	weightShortName       = 0.6
	weightUniformCaseName = 0.3
	weightNumericName     = 0.4
	weightNameKeyword     = 0.9

	weightIncompleteProfile = 0.5
)

// Scoring model constants. The normalization constant is fixed at 4.0 (one
// per sub-score) regardless of which indicators apply to a given profile.
const (
	scoreNormalization = 4.0
	suspicionThreshold = 0.7

	faceConsistencyFloor = 0.5
	qualityCeiling       = 0.95
	minBioLength         = 20
	genericPhraseFloor   = 3
	botDensityThreshold  = 0.3
	minIncompleteFields  = 2
)

// defaultPluginTimeout bounds each pluggable photo check so a slow backend
// can never stall an analysis.
const defaultPluginTimeout = 2 * time.Second

// Profile is a snapshot of a user profile at analysis time. Analyses are
// produced once per call and never mutated; re-run the analysis on new data
// rather than patching a prior result.
type Profile struct {
	Photos   []Photo
	Bio      string
	Name     string
	Age      int
	Location string
}

// Analysis is the outcome of analyzing a profile snapshot.
type Analysis struct {
	// Suspicious is true when Score reaches the suspicion threshold.
	Suspicious bool

	// Score is the normalized suspicion score in [0,1].
	Score float64

	// Indicators lists the signals that fired, in check order.
	Indicators []Indicator

	// Recommendation is the suggested action for the profile.
	Recommendation Recommendation
}

// Options configures an Analyzer. The zero value is fully usable: neutral
// photo checks and the default plugin timeout.
type Options struct {
	// Checks supplies pluggable photo capabilities. Missing entries fall
	// back to neutral defaults.
	Checks Checks

	// PluginTimeout bounds each plugin call. Zero means the default.
	PluginTimeout time.Duration
}

// Analyzer scores profile snapshots. Analyzers are stateless and safe for
// concurrent use.
type Analyzer struct {
	checks        Checks
	pluginTimeout time.Duration
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts Options) *Analyzer {
	timeout := opts.PluginTimeout
	if timeout <= 0 {
		timeout = defaultPluginTimeout
	}

	return &Analyzer{
		checks:        opts.Checks.withDefaults(),
		pluginTimeout: timeout,
	}
}

// AnalyzeProfile scores the profile snapshot. It never fails: missing
// fields skip their associated checks and plugin errors count as "not
// flagged".
func (a *Analyzer) AnalyzeProfile(ctx context.Context, profile Profile) Analysis {
	var indicators []Indicator

	photoScore, photoIndicators := a.scorePhotos(ctx, profile.Photos)
	indicators = append(indicators, photoIndicators...)

	bioScore, bioIndicators := scoreBio(profile.Bio)
	indicators = append(indicators, bioIndicators...)

	nameScore, nameIndicators := scoreName(profile.Name)
	indicators = append(indicators, nameIndicators...)

	completenessScore, completenessIndicators := scoreCompleteness(profile)
	indicators = append(indicators, completenessIndicators...)

	total := photoScore + bioScore + nameScore + completenessScore
	score := clamp01(total / scoreNormalization)
	suspicious := score >= suspicionThreshold

	recommendation := RecommendationAllow
	if suspicious {
		recommendation = RecommendationFlagForReview
	}

	return Analysis{
		Suspicious:     suspicious,
		Score:          score,
		Indicators:     indicators,
		Recommendation: recommendation,
	}
}

// photoResult holds one photo's plugin outcomes, joined back by index.
type photoResult struct {
	stock        bool
	professional bool
	quality      float64
}

// scorePhotos computes the photo sub-score. Per-photo plugin checks are
// independent, so they fan out across goroutines; results re-join by photo
// index so indicator messages keep stable positions.
func (a *Analyzer) scorePhotos(ctx context.Context, photos []Photo) (float64, []Indicator) {
	var score float64
	var indicators []Indicator

	switch len(photos) {
	case 0:
		return weightNoPhotos, []Indicator{NoPhotos{}}
	case 1:
		score += weightSinglePhoto
		indicators = append(indicators, SinglePhoto{})
	}

	results := make([]photoResult, len(photos))
	var wg sync.WaitGroup
	for i, photo := range photos {
		wg.Add(1)
		go func(i int, photo Photo) {
			defer wg.Done()
			results[i] = photoResult{
				stock: safeBool(ctx, a.pluginTimeout, func(ctx context.Context) (bool, error) {
					return a.checks.Stock.IsStockPhoto(ctx, photo)
				}),
				professional: safeBool(ctx, a.pluginTimeout, func(ctx context.Context) (bool, error) {
					return a.checks.Professional.IsProfessional(ctx, photo)
				}),
				quality: safeScore(ctx, a.pluginTimeout, defaultQualityScore, func(ctx context.Context) (float64, error) {
					return a.checks.Quality.Quality(ctx, photo)
				}),
			}
		}(i, photo)
	}
	wg.Wait()

	for i, r := range results {
		if r.stock {
			score += weightStockPhoto
			indicators = append(indicators, StockPhoto{Index: i})
		}
	}
	for i, r := range results {
		if r.professional {
			score += weightProfessionalPhoto
			indicators = append(indicators, ProfessionalPhoto{Index: i})
		}
	}

	if len(photos) >= 2 {
		consistency := safeScore(ctx, a.pluginTimeout, 1.0, func(ctx context.Context) (float64, error) {
			return a.checks.Faces.Consistency(ctx, photos)
		})
		if consistency < faceConsistencyFloor {
			score += weightInconsistentFaces
			indicators = append(indicators, InconsistentFaces{Consistency: consistency})
		}
	}

	var qualitySum float64
	for _, r := range results {
		qualitySum += r.quality
	}
	average := qualitySum / float64(len(results))
	if average > qualityCeiling {
		score += weightHighQualityPhotos
		indicators = append(indicators, HighQualityPhotos{Average: average})
	}

	return score, indicators
}

// scoreBio computes the bio sub-score. Empty and short are mutually
// exclusive; link and payment scans stop at the first match.
func scoreBio(bio string) (float64, []Indicator) {
	var score float64
	var indicators []Indicator

	length := utf8.RuneCountInString(bio)
	if length == 0 {
		return weightEmptyBio, []Indicator{EmptyBio{}}
	}
	if length < minBioLength {
		score += weightShortBio
		indicators = append(indicators, ShortBio{Length: length})
	}

	lower := strings.ToLower(bio)

	phraseCount := 0
	for _, phrase := range genericBioPhrases {
		if strings.Contains(lower, phrase) {
			phraseCount++
		}
	}
	if phraseCount >= genericPhraseFloor {
		score += weightGenericBio
		indicators = append(indicators, GenericBio{PhraseCount: phraseCount})
	}

	for _, pattern := range bioLinkPatterns {
		if strings.Contains(lower, pattern) {
			score += weightLinkBio
			indicators = append(indicators, ExternalLinkBio{Pattern: pattern})
			break
		}
	}

	for _, keyword := range bioPaymentKeywords {
		if strings.Contains(lower, keyword) {
			score += weightPaymentBio
			indicators = append(indicators, PaymentBio{Keyword: keyword})
			break
		}
	}

	if textutil.CountEmoji(bio) > length/2 {
		score += weightEmojiBio
		indicators = append(indicators, EmojiFloodBio{})
	}

	if density := textutil.CharSetDensity(bio, botCharset); density > botDensityThreshold {
		score += weightBotBio
		indicators = append(indicators, BotLikeBio{Density: density})
	}

	return score, indicators
}

// scoreName computes the name sub-score. A missing name only counts as
// short; the remaining checks need content to inspect.
func scoreName(name string) (float64, []Indicator) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return weightShortName, []Indicator{ShortName{}}
	}

	var score float64
	var indicators []Indicator

	if !strings.Contains(trimmed, " ") {
		score += weightSingleWordName
		indicators = append(indicators, SingleWordName{})
	}

	if utf8.RuneCountInString(trimmed) < 2 {
		score += weightShortName
		indicators = append(indicators, ShortName{})
	}

	if trimmed == strings.ToUpper(trimmed) || trimmed == strings.ToLower(trimmed) {
		score += weightUniformCaseName
		indicators = append(indicators, UniformCaseName{})
	}

	if strings.IndexFunc(trimmed, unicode.IsDigit) >= 0 {
		score += weightNumericName
		indicators = append(indicators, NumericName{})
	}

	lower := strings.ToLower(trimmed)
	for _, keyword := range suspiciousNameKeywords {
		if strings.Contains(lower, keyword) {
			score += weightNameKeyword
			indicators = append(indicators, SuspiciousNameKeyword{Keyword: keyword})
			break
		}
	}

	return score, indicators
}

// scoreCompleteness computes the completeness sub-score.
func scoreCompleteness(profile Profile) (float64, []Indicator) {
	missing := 0
	if len(profile.Photos) == 0 {
		missing++
	}
	if profile.Bio == "" {
		missing++
	}
	if strings.TrimSpace(profile.Location) == "" {
		missing++
	}

	if missing < minIncompleteFields {
		return 0, nil
	}
	return weightIncompleteProfile, []Indicator{IncompleteProfile{MissingCount: missing}}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
