package config

import "time"

// Option is a function that configures a Config
type Option func(*Config)

// WithServiceName sets the service name
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithEnvironment sets the deployment environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithOtelEnabled toggles OTLP export of traces, metrics and logs
func WithOtelEnabled(enabled bool) Option {
	return func(c *Config) {
		c.OtelEnabled = enabled
	}
}

// WithOtelEndpoint sets the OpenTelemetry exporter endpoint
func WithOtelEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.OtelEndpoint = endpoint
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithStorefrontPort sets the HTTP listen port
func WithStorefrontPort(port string) Option {
	return func(c *Config) {
		c.StorefrontPort = port
	}
}

// WithDataFilePath sets the catalog file path
func WithDataFilePath(path string) Option {
	return func(c *Config) {
		c.DataFilePath = path
	}
}

// WithDefaultCategory sets the category applied when a listing request names none
func WithDefaultCategory(category string) Option {
	return func(c *Config) {
		c.DefaultCategory = category
	}
}

// WithPageSize sets the number of products per listing page
func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithCartLimit caps the cart counter
func WithCartLimit(limit int) Option {
	return func(c *Config) {
		c.CartLimit = limit
	}
}

// WithShutdownTimeouts sets the overall and per-task shutdown budgets
func WithShutdownTimeouts(total, server, otel time.Duration) Option {
	return func(c *Config) {
		c.ShutdownTotalTimeout = total
		c.ShutdownServerTimeout = server
		c.ShutdownOtelMinTimeout = otel
	}
}
