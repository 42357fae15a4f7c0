// Package handlers implements the HTTP handlers for the content safety
// endpoints.
//
// # Overview
//
// All endpoints accept POST with a JSON body and respond with JSON:
//
//	POST /v1/sanitize          sanitize text at a chosen level
//	POST /v1/moderate          moderate a piece of text
//	POST /v1/moderate/name     validate a display name
//	POST /v1/profile/analyze   score a profile for fake-profile signals
//	POST /v1/profile/behavior  score an activity snapshot
//
// Handlers never echo raw input in error responses and never log request
// bodies; user content only leaves the service inside the documented
// response fields.
package handlers
