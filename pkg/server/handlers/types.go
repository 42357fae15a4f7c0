package handlers

// SanitizeRequest is the body for POST /v1/sanitize.
type SanitizeRequest struct {
	// Text is the raw input to sanitize.
	Text string `json:"text"`

	// Level selects the sanitization level ("basic", "standard",
	// "strict"). Empty selects the server's configured default.
	Level string `json:"level,omitempty"`
}

// SanitizeResponse is the reply for POST /v1/sanitize.
type SanitizeResponse struct {
	Sanitized string `json:"sanitized"`
	Level     string `json:"level"`
}

// ModerateRequest is the body for POST /v1/moderate.
type ModerateRequest struct {
	Text string `json:"text"`
}

// ViolationDetail describes one detected violation.
type ViolationDetail struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ModerateResponse is the reply for POST /v1/moderate. Filtered and
// Sanitized describe the sanitized form of the input, not the raw text.
type ModerateResponse struct {
	Appropriate bool              `json:"appropriate"`
	Violations  []ViolationDetail `json:"violations"`
	Score       int               `json:"score"`
	Sanitized   string            `json:"sanitized"`
	Filtered    string            `json:"filtered"`
}

// NameRequest is the body for POST /v1/moderate/name.
type NameRequest struct {
	Name string `json:"name"`
}

// NameResponse is the reply for POST /v1/moderate/name. Reason is empty
// for valid names.
type NameResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// PhotoPayload is one photo in a profile analysis request. Only dimensions
// are used; photo bytes never cross this API.
type PhotoPayload struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url,omitempty"`
}

// ProfileRequest is the body for POST /v1/profile/analyze.
type ProfileRequest struct {
	Photos   []PhotoPayload `json:"photos"`
	Bio      string         `json:"bio"`
	Name     string         `json:"name"`
	Age      int            `json:"age"`
	Location string         `json:"location"`
}

// AnalysisResponse is the reply for both profile endpoints. Indicators are
// human-readable signal descriptions in check order.
type AnalysisResponse struct {
	Suspicious     bool     `json:"suspicious"`
	Score          float64  `json:"score"`
	Indicators     []string `json:"indicators"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// BehaviorRequest is the body for POST /v1/profile/behavior.
type BehaviorRequest struct {
	MessagesSent     int     `json:"messages_sent"`
	MessagesReceived int     `json:"messages_received"`
	Matches          int     `json:"matches"`
	AccountAgeHours  float64 `json:"account_age_hours"`
}
