package handlers

import (
	"net/http"

	"mercator-hq/ganymede/pkg/pipeline"
	"mercator-hq/ganymede/pkg/sanitize"
)

// SanitizeHandler handles POST /v1/sanitize.
type SanitizeHandler struct {
	processor *pipeline.Processor
}

// NewSanitizeHandler creates a sanitize handler backed by the processor.
func NewSanitizeHandler(processor *pipeline.Processor) *SanitizeHandler {
	return &SanitizeHandler{processor: processor}
}

// ServeHTTP implements http.Handler.
func (h *SanitizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req SanitizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	level := h.processor.DefaultLevel()
	if req.Level != "" {
		parsed, err := sanitize.ParseLevel(req.Level)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown sanitization level")
			return
		}
		level = parsed
	}

	sanitized := h.processor.Sanitize(r.Context(), req.Text, level)
	writeJSON(w, http.StatusOK, SanitizeResponse{
		Sanitized: sanitized,
		Level:     level.String(),
	})
}

// ModerateHandler handles POST /v1/moderate.
type ModerateHandler struct {
	processor *pipeline.Processor
}

// NewModerateHandler creates a moderation handler backed by the processor.
func NewModerateHandler(processor *pipeline.Processor) *ModerateHandler {
	return &ModerateHandler{processor: processor}
}

// ServeHTTP implements http.Handler.
func (h *ModerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req ModerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := h.processor.CheckText(r.Context(), req.Text)

	violations := make([]ViolationDetail, len(result.Violations))
	for i, v := range result.Violations {
		violations[i] = ViolationDetail{
			Type:        v.String(),
			Description: v.Description(),
		}
	}

	writeJSON(w, http.StatusOK, ModerateResponse{
		Appropriate: result.Appropriate,
		Violations:  violations,
		Score:       result.Score,
		Sanitized:   result.Sanitized,
		Filtered:    result.Filtered,
	})
}

// NameHandler handles POST /v1/moderate/name.
type NameHandler struct {
	processor *pipeline.Processor
}

// NewNameHandler creates a name validation handler backed by the processor.
func NewNameHandler(processor *pipeline.Processor) *NameHandler {
	return &NameHandler{processor: processor}
}

// ServeHTTP implements http.Handler.
func (h *NameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req NameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := h.processor.CheckName(r.Context(), req.Name)
	writeJSON(w, http.StatusOK, NameResponse{
		Valid:  result.Valid,
		Reason: result.Reason,
	})
}
