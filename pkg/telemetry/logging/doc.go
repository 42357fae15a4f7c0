// Package logging provides structured logging with PII redaction.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON and text formats
//   - Automatic PII redaction (emails, phone numbers, addresses)
//   - Context-aware logging with request IDs and metadata
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    RedactPII: true,
//	})
//
//	// Log structured data
//	logger.Info("check completed",
//	    "request_id", "req-123",
//	    "contact", "user@example.com",  // Automatically redacted
//	    "duration_ms", 12,
//	)
//
//	// Create context-aware logger
//	ctx := logging.WithRequestID(ctx, "req-123")
//	ctxLogger := logger.WithContext(ctx)
//	ctxLogger.Info("processing")  // Includes request_id automatically
//
// # PII Redaction
//
// The redaction patterns mirror the personal-information taxonomy the
// content moderator detects, so flagged content never round-trips into log
// output in the clear:
//
//   - Emails: user@example.com → ***@***
//   - Phone numbers: 555-123-4567 → ***-***-****
//   - Street addresses: 123 Main Street → [address]
//   - Bearer tokens and password fields
//
// Values under sensitive keys (password, token, email, phone, ...) are
// replaced wholesale regardless of their content.
package logging
