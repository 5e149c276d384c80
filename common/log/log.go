package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/narender/cellar-store/common/config"
)

// Init builds the application logger, installs it as the slog default and
// returns it. Call after telemetry.Init so the OTel bridge picks up the
// global logger provider.
func Init(cfg *config.Config) *slog.Logger {
	logger := New(cfg, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("Logger initialized",
		slog.String("environment", cfg.Environment),
		slog.String("level", ParseLevel(cfg.LogLevel).String()),
		slog.String("format", cfg.LogFormat),
		slog.Bool("otel_bridge", cfg.OtelEnabled))
	return logger
}

// New builds a logger writing to w in the configured format. When OTLP export
// is enabled, records are also sent through the otelslog bridge.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	var console slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	} else {
		console = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		})
	}

	handler := console
	if cfg.OtelEnabled {
		handler = slogmulti.Fanout(console, otelslog.NewHandler(cfg.ServiceName))
	}

	return slog.New(NewTraceContextHandler(handler)).With(
		slog.String("service", cfg.ServiceName),
	)
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
