package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateSanitizer(&cfg.Sanitizer)...)
	errs = append(errs, validateModeration(&cfg.Moderation)...)
	errs = append(errs, validateAnalyzer(&cfg.Analyzer)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	} else if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid listen address %q: must be host:port", cfg.ListenAddress),
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must not be negative",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must not be negative",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must not be negative",
		})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.request_timeout",
			Message: "request timeout must be positive",
		})
	}
	if cfg.MaxHeaderBytes <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be positive",
		})
	}
	if cfg.MaxBodyBytes <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_body_bytes",
			Message: "max body bytes must be positive",
		})
	}

	if cfg.CORS.Enabled {
		if len(cfg.CORS.AllowedOrigins) == 0 {
			errs = append(errs, FieldError{
				Field:   "server.cors.allowed_origins",
				Message: "at least one allowed origin is required when CORS is enabled",
			})
		}
		if cfg.CORS.MaxAge < 0 {
			errs = append(errs, FieldError{
				Field:   "server.cors.max_age",
				Message: "max age must not be negative",
			})
		}
	}

	return errs
}

// validSanitizerLevels are the accepted values for sanitizer.default_level.
var validSanitizerLevels = map[string]bool{
	"basic":    true,
	"standard": true,
	"strict":   true,
}

// validateSanitizer validates sanitizer configuration.
func validateSanitizer(cfg *SanitizerConfig) []FieldError {
	var errs []FieldError

	if !validSanitizerLevels[cfg.DefaultLevel] {
		errs = append(errs, FieldError{
			Field:   "sanitizer.default_level",
			Message: fmt.Sprintf("invalid level %q: must be one of basic, standard, strict", cfg.DefaultLevel),
		})
	}

	return errs
}

// validateModeration validates moderation configuration.
func validateModeration(cfg *ModerationConfig) []FieldError {
	var errs []FieldError

	if cfg.Watch && cfg.WordlistPath == "" {
		errs = append(errs, FieldError{
			Field:   "moderation.watch",
			Message: "watch requires wordlist_path to be set",
		})
	}

	if cfg.ReloadSchedule != "" {
		if cfg.WordlistPath == "" {
			errs = append(errs, FieldError{
				Field:   "moderation.reload_schedule",
				Message: "reload schedule requires wordlist_path to be set",
			})
		}
		if _, err := cron.ParseStandard(cfg.ReloadSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "moderation.reload_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.ReloadSchedule, err),
			})
		}
	}

	return errs
}

// validateAnalyzer validates analyzer configuration.
func validateAnalyzer(cfg *AnalyzerConfig) []FieldError {
	var errs []FieldError

	if cfg.PluginTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "analyzer.plugin_timeout",
			Message: "plugin timeout must not be negative",
		})
	}

	return errs
}

// validLogLevels are the accepted values for telemetry.logging.level.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats are the accepted values for telemetry.logging.format.
var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	if !validLogLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q: must be one of debug, info, warn, error", cfg.Logging.Level),
		})
	}
	if !validLogFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q: must be json or text", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Path == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path is required when metrics are enabled",
			})
		} else if !strings.HasPrefix(cfg.Metrics.Path, "/") {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: fmt.Sprintf("metrics path %q must start with /", cfg.Metrics.Path),
			})
		}
	}

	return errs
}
