package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Minimal logger for the loading phase, before slog is configured.
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

// Viper keys. Environment variables are the upper-cased form.
const (
	keyServiceName            = "service_name"
	keyServiceVersion         = "service_version"
	keyEnvironment            = "environment"
	keyOtelEnabled            = "otel_enabled"
	keyOtelExporterEndpoint   = "otel_exporter_otlp_endpoint"
	keyOtelExporterInsecure   = "otel_exporter_insecure"
	keyOtelSampleRatio        = "otel_sample_ratio"
	keyOtelBatchTimeoutMS     = "otel_batch_timeout_ms"
	keyOtelMetricIntervalSec  = "otel_metric_interval_sec"
	keyLogLevel               = "log_level"
	keyLogFormat              = "log_format"
	keyStorefrontPort         = "storefront_port"
	keyDataFilePath           = "data_file_path"
	keyCatalogDefaultCategory = "catalog_default_category"
	keyCatalogPageSize        = "catalog_page_size"
	keyCartLimit              = "cart_limit"
	keyShutdownTotalTimeout   = "shutdown_total_timeout_sec"
	keyShutdownServerTimeout  = "shutdown_server_timeout_sec"
	keyShutdownOtelMinTimeout = "shutdown_otel_min_timeout_sec"
)

var (
	allowedLogLevels   = []string{"debug", "info", "warn", "error"}
	allowedLogFormats  = []string{"text", "json"}
	allowedCategories  = []string{"wine", "liquor", "spirits"}
	allowedEnvironment = []string{"development", "staging", "production", "test"}
)

// Config holds all configuration settings
type Config struct {
	// Service information
	ServiceName    string
	ServiceVersion string
	Environment    string

	// OpenTelemetry configuration
	OtelEnabled        bool
	OtelEndpoint       string
	OtelInsecure       bool
	OtelSampleRatio    float64
	OtelBatchTimeout   time.Duration
	OtelMetricInterval time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Storefront settings
	StorefrontPort  string
	DataFilePath    string
	DefaultCategory string
	PageSize        int
	CartLimit       int

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration
	ShutdownServerTimeout  time.Duration
	ShutdownOtelMinTimeout time.Duration
}

// NewConfig creates a Config from defaults and the provided options. It does
// not read the environment; use Load for that.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		ServiceName:            "storefront-service",
		ServiceVersion:         "dev",
		Environment:            "development",
		OtelEnabled:            false,
		OtelEndpoint:           "localhost:4317",
		OtelInsecure:           true,
		OtelSampleRatio:        1.0,
		OtelBatchTimeout:       5 * time.Second,
		OtelMetricInterval:     15 * time.Second,
		LogLevel:               "info",
		LogFormat:              "text",
		StorefrontPort:         "8080",
		DataFilePath:           "storefront-service/data/products.json",
		DefaultCategory:        "wine",
		PageSize:               12,
		CartLimit:              999,
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load reads an optional .env file, an optional config.yaml and the process
// environment, in increasing order of precedence. Options are applied last.
func Load(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		configLogger.WithError(err).Warn("Ignoring unreadable .env file")
	}

	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		configLogger.Debug("No config.yaml found, using defaults and environment")
	} else {
		configLogger.WithField("file", v.ConfigFileUsed()).Info("Loaded config file")
	}

	v.AutomaticEnv()

	cfg := fromViper(v)
	for _, opt := range opts {
		opt(cfg)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(keyServiceName, d.ServiceName)
	v.SetDefault(keyServiceVersion, d.ServiceVersion)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyOtelEnabled, d.OtelEnabled)
	v.SetDefault(keyOtelExporterEndpoint, d.OtelEndpoint)
	v.SetDefault(keyOtelExporterInsecure, d.OtelInsecure)
	v.SetDefault(keyOtelSampleRatio, d.OtelSampleRatio)
	v.SetDefault(keyOtelBatchTimeoutMS, d.OtelBatchTimeout.Milliseconds())
	v.SetDefault(keyOtelMetricIntervalSec, int(d.OtelMetricInterval.Seconds()))
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyLogFormat, d.LogFormat)
	v.SetDefault(keyStorefrontPort, d.StorefrontPort)
	v.SetDefault(keyDataFilePath, d.DataFilePath)
	v.SetDefault(keyCatalogDefaultCategory, d.DefaultCategory)
	v.SetDefault(keyCatalogPageSize, d.PageSize)
	v.SetDefault(keyCartLimit, d.CartLimit)
	v.SetDefault(keyShutdownTotalTimeout, int(d.ShutdownTotalTimeout.Seconds()))
	v.SetDefault(keyShutdownServerTimeout, int(d.ShutdownServerTimeout.Seconds()))
	v.SetDefault(keyShutdownOtelMinTimeout, int(d.ShutdownOtelMinTimeout.Seconds()))
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServiceName:            v.GetString(keyServiceName),
		ServiceVersion:         v.GetString(keyServiceVersion),
		Environment:            v.GetString(keyEnvironment),
		OtelEnabled:            v.GetBool(keyOtelEnabled),
		OtelEndpoint:           v.GetString(keyOtelExporterEndpoint),
		OtelInsecure:           v.GetBool(keyOtelExporterInsecure),
		OtelSampleRatio:        v.GetFloat64(keyOtelSampleRatio),
		OtelBatchTimeout:       time.Duration(v.GetInt64(keyOtelBatchTimeoutMS)) * time.Millisecond,
		OtelMetricInterval:     time.Duration(v.GetInt(keyOtelMetricIntervalSec)) * time.Second,
		LogLevel:               v.GetString(keyLogLevel),
		LogFormat:              v.GetString(keyLogFormat),
		StorefrontPort:         v.GetString(keyStorefrontPort),
		DataFilePath:           v.GetString(keyDataFilePath),
		DefaultCategory:        v.GetString(keyCatalogDefaultCategory),
		PageSize:               v.GetInt(keyCatalogPageSize),
		CartLimit:              v.GetInt(keyCartLimit),
		ShutdownTotalTimeout:   time.Duration(v.GetInt(keyShutdownTotalTimeout)) * time.Second,
		ShutdownServerTimeout:  time.Duration(v.GetInt(keyShutdownServerTimeout)) * time.Second,
		ShutdownOtelMinTimeout: time.Duration(v.GetInt(keyShutdownOtelMinTimeout)) * time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() []error {
	validator := NewValidator()

	validator.RequireNonEmpty("ServiceName", c.ServiceName)
	validator.RequireNonEmpty("ServiceVersion", c.ServiceVersion)
	validator.RequireNonEmpty("DataFilePath", c.DataFilePath)
	validator.RequireOneOf("Environment", c.Environment, allowedEnvironment)
	validator.RequireOneOf("LogLevel", c.LogLevel, allowedLogLevels)
	validator.RequireOneOf("LogFormat", c.LogFormat, allowedLogFormats)
	validator.RequireOneOf("DefaultCategory", c.DefaultCategory, allowedCategories)

	if port, err := strconv.Atoi(c.StorefrontPort); err == nil {
		RequireInRange(validator, "StorefrontPort", port, 1, 65535)
	} else {
		validator.AddError("StorefrontPort", "must be a valid integer")
	}

	RequireInRange(validator, "PageSize", c.PageSize, 1, 100)
	RequireInRange(validator, "CartLimit", c.CartLimit, 1, 1_000_000)
	RequireInRange(validator, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)

	if c.OtelEnabled {
		validator.RequireNonEmpty("OtelEndpoint", c.OtelEndpoint)
	}

	if c.DataFilePath != "" {
		if _, err := os.Stat(c.DataFilePath); errors.Is(err, fs.ErrNotExist) {
			validator.AddError("DataFilePath", "file does not exist: "+c.DataFilePath)
		}
	}

	return validator.Errors()
}

// Log logs the current configuration
func (c *Config) Log() {
	configLogger.WithFields(logrus.Fields{
		"service_name":      c.ServiceName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"otel_enabled":      c.OtelEnabled,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_insecure":     c.OtelInsecure,
		"otel_sample_ratio": c.OtelSampleRatio,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"port":              c.StorefrontPort,
		"data_file_path":    c.DataFilePath,
		"default_category":  c.DefaultCategory,
		"page_size":         c.PageSize,
		"shutdown_total":    c.ShutdownTotalTimeout,
		"shutdown_server":   c.ShutdownServerTimeout,
		"shutdown_otel":     c.ShutdownOtelMinTimeout,
	}).Info("Configuration loaded")
}
