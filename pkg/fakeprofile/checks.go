package fakeprofile

import (
	"context"
	"time"
)

// Photo is one profile photo with its pixel dimensions. URL is opaque to
// this package; plugins may use it to reach an external lookup service.
type Photo struct {
	URL    string
	Width  int
	Height int
}

// Pixels returns the photo's pixel count.
func (p Photo) Pixels() int {
	return p.Width * p.Height
}

// StockPhotoChecker reports whether a photo looks like a stock photo.
// Implementations backed by a network call should respect the context
// deadline; the analyzer treats errors and timeouts as "not flagged".
type StockPhotoChecker interface {
	IsStockPhoto(ctx context.Context, photo Photo) (bool, error)
}

// ProfessionalPhotoChecker reports whether a photo looks professionally
// produced.
type ProfessionalPhotoChecker interface {
	IsProfessional(ctx context.Context, photo Photo) (bool, error)
}

// QualityScorer scores a photo's image quality in [0,1].
type QualityScorer interface {
	Quality(ctx context.Context, photo Photo) (float64, error)
}

// FaceConsistencyChecker scores how consistent faces are across a photo
// set, in [0,1]. Only called when the profile has at least two photos.
type FaceConsistencyChecker interface {
	Consistency(ctx context.Context, photos []Photo) (float64, error)
}

// Checks bundles the pluggable photo capabilities. Zero-value fields fall
// back to the neutral defaults.
type Checks struct {
	Stock        StockPhotoChecker
	Professional ProfessionalPhotoChecker
	Quality      QualityScorer
	Faces        FaceConsistencyChecker
}

// professionalPixelThreshold is the default cutoff for the professional
// photo heuristic: anything above roughly a 12 megapixel frame is assumed
// to come from a dedicated camera rather than a phone selfie.
const professionalPixelThreshold = 12_000_000

// defaultQualityScore is the neutral constant the default scorer returns.
// It sits below the high-quality trigger so the default never flags.
const defaultQualityScore = 0.5

// neutralStockChecker never flags a photo.
type neutralStockChecker struct{}

func (neutralStockChecker) IsStockPhoto(context.Context, Photo) (bool, error) {
	return false, nil
}

// pixelCountChecker is the default professional-photo heuristic.
type pixelCountChecker struct{}

func (pixelCountChecker) IsProfessional(_ context.Context, photo Photo) (bool, error) {
	return photo.Pixels() > professionalPixelThreshold, nil
}

// constantQualityScorer returns the neutral quality constant.
type constantQualityScorer struct{}

func (constantQualityScorer) Quality(context.Context, Photo) (float64, error) {
	return defaultQualityScore, nil
}

// neutralFaceChecker reports full consistency.
type neutralFaceChecker struct{}

func (neutralFaceChecker) Consistency(context.Context, []Photo) (float64, error) {
	return 1.0, nil
}

// withDefaults fills missing capabilities with the neutral implementations.
func (c Checks) withDefaults() Checks {
	if c.Stock == nil {
		c.Stock = neutralStockChecker{}
	}
	if c.Professional == nil {
		c.Professional = pixelCountChecker{}
	}
	if c.Quality == nil {
		c.Quality = constantQualityScorer{}
	}
	if c.Faces == nil {
		c.Faces = neutralFaceChecker{}
	}
	return c
}

// safeBool runs a plugin returning a bool, converting errors, timeouts and
// panics into "not flagged". Content-safety checks must never become an
// availability risk for the caller.
func safeBool(ctx context.Context, timeout time.Duration, fn func(context.Context) (bool, error)) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	flagged, err := fn(ctx)
	if err != nil {
		return false
	}
	return flagged
}

// safeScore runs a plugin returning a score, converting errors, timeouts
// and panics into the given neutral value.
func safeScore(ctx context.Context, timeout time.Duration, neutral float64, fn func(context.Context) (float64, error)) (result float64) {
	defer func() {
		if recover() != nil {
			result = neutral
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	score, err := fn(ctx)
	if err != nil {
		return neutral
	}
	return score
}
