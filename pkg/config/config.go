package config

import "time"

// Config is the root configuration structure for Ganymede. It contains all
// configuration sections for the HTTP server, the sanitizer, the content
// moderator, the profile analyzer, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Sanitizer contains configuration for the text sanitization pipeline.
	Sanitizer SanitizerConfig `yaml:"sanitizer"`

	// Moderation contains configuration for the content moderator including
	// the optional wordlist overlay and its reload behavior.
	Moderation ModerationConfig `yaml:"moderation"`

	// Analyzer contains configuration for the fake-profile analyzer.
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. A zero or negative value means no timeout.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If IdleTimeout is zero, ReadTimeout is used.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// If requests are still in-flight after this timeout, the server will
	// force shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// RequestTimeout bounds each request's handler. Checks are CPU-bound
	// and fast, so a request that exceeds it is misbehaving.
	// Default: 15s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values, including the
	// request line. It does not limit the size of the request body.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes limits the size of request bodies. Checks operate on
	// user-generated text, so oversized bodies are rejected outright.
	// Default: 1048576 (1MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS is enabled.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Use ["*"] to allow all origins (not recommended for production).
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods for CORS requests.
	// Default: ["GET", "POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers for CORS requests.
	// Default: ["Authorization", "Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders is a list of headers that are exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the maximum age (in seconds) for preflight request cache.
	// Default: 3600 (1 hour)
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls whether credentials (cookies, auth headers)
	// are allowed in CORS requests.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials"`
}

// SanitizerConfig contains configuration for the text sanitization pipeline.
type SanitizerConfig struct {
	// DefaultLevel is the sanitization level applied when a request does
	// not name one explicitly.
	// Options: "basic", "standard", "strict"
	// Default: "standard"
	DefaultLevel string `yaml:"default_level"`
}

// ModerationConfig contains configuration for the content moderator.
type ModerationConfig struct {
	// WordlistPath is the path to an optional YAML wordlist overlay that
	// replaces the built-in profanity, spam, and forbidden-name lists.
	// An empty path means the built-in lists are used unchanged.
	// Default: ""
	WordlistPath string `yaml:"wordlist_path"`

	// Watch controls whether the wordlist overlay file is watched for
	// changes and reloaded automatically. Only used when WordlistPath
	// is set.
	// Default: false
	Watch bool `yaml:"watch"`

	// ReloadSchedule is an optional cron expression (standard five-field
	// syntax) on which the overlay is re-read regardless of filesystem
	// events. Covers mounts where change notifications are unreliable.
	// An empty schedule disables periodic reloads.
	// Default: ""
	ReloadSchedule string `yaml:"reload_schedule"`
}

// AnalyzerConfig contains configuration for the fake-profile analyzer.
type AnalyzerConfig struct {
	// PluginTimeout bounds each pluggable photo check. Zero means the
	// analyzer's built-in default.
	// Default: 2s
	PluginTimeout time.Duration `yaml:"plugin_timeout"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// RedactPII controls whether log output is scrubbed of personal
	// information (emails, phone numbers) before being written.
	// Default: true
	RedactPII bool `yaml:"redact_pii"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether Prometheus metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path where metrics are exposed.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus namespace prefix for all metrics.
	// Default: "ganymede"
	Namespace string `yaml:"namespace"`
}
