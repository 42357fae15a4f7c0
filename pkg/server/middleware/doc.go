// Package middleware provides the HTTP middleware chain for the content
// safety server.
//
// # Overview
//
// Middleware are http.Handler wrappers applied outside-in by the server:
//
//	handler = Recovery(logger)(handler)   // outermost
//	handler = Logging(logger)(handler)
//	handler = RequestID(handler)
//	handler = CORS(cfg)(handler)
//	handler = BodyLimit(maxBytes)(handler)
//	handler = Timeout(timeout)(handler)   // innermost
//
// Request IDs flow through the logging package's context keys, so every
// log line emitted by a handler carries the request_id field without the
// handler threading it explicitly.
package middleware
