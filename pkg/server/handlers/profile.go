package handlers

import (
	"net/http"
	"time"

	"mercator-hq/ganymede/pkg/fakeprofile"
	"mercator-hq/ganymede/pkg/pipeline"
)

// ProfileHandler handles POST /v1/profile/analyze.
type ProfileHandler struct {
	processor *pipeline.Processor
}

// NewProfileHandler creates a profile analysis handler backed by the
// processor.
func NewProfileHandler(processor *pipeline.Processor) *ProfileHandler {
	return &ProfileHandler{processor: processor}
}

// ServeHTTP implements http.Handler.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req ProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	photos := make([]fakeprofile.Photo, len(req.Photos))
	for i, p := range req.Photos {
		photos[i] = fakeprofile.Photo{
			Width:  p.Width,
			Height: p.Height,
			URL:    p.URL,
		}
	}

	analysis := h.processor.CheckProfile(r.Context(), fakeprofile.Profile{
		Photos:   photos,
		Bio:      req.Bio,
		Name:     req.Name,
		Age:      req.Age,
		Location: req.Location,
	})

	indicators := make([]string, len(analysis.Indicators))
	for i, ind := range analysis.Indicators {
		indicators[i] = ind.Description()
	}

	writeJSON(w, http.StatusOK, AnalysisResponse{
		Suspicious:     analysis.Suspicious,
		Score:          analysis.Score,
		Indicators:     indicators,
		Recommendation: analysis.Recommendation.String(),
	})
}

// BehaviorHandler handles POST /v1/profile/behavior.
type BehaviorHandler struct {
	processor *pipeline.Processor
}

// NewBehaviorHandler creates a behavior analysis handler backed by the
// processor.
func NewBehaviorHandler(processor *pipeline.Processor) *BehaviorHandler {
	return &BehaviorHandler{processor: processor}
}

// ServeHTTP implements http.Handler.
func (h *BehaviorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req BehaviorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.MessagesSent < 0 || req.MessagesReceived < 0 || req.Matches < 0 || req.AccountAgeHours < 0 {
		writeError(w, http.StatusBadRequest, "counts and account age must be non-negative")
		return
	}

	analysis := h.processor.CheckBehavior(r.Context(), fakeprofile.BehaviorSnapshot{
		MessagesSent:     req.MessagesSent,
		MessagesReceived: req.MessagesReceived,
		Matches:          req.Matches,
		AccountAge:       time.Duration(req.AccountAgeHours * float64(time.Hour)),
	})

	indicators := make([]string, len(analysis.Indicators))
	for i, ind := range analysis.Indicators {
		indicators[i] = ind.Description()
	}

	writeJSON(w, http.StatusOK, AnalysisResponse{
		Suspicious: analysis.Suspicious,
		Score:      analysis.Score,
		Indicators: indicators,
	})
}
