package telemetry

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/host"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	logglobal "go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/narender/cellar-store/common/config"
)

type shutdownFunc func(context.Context) error

// Init configures propagation and, when cfg.OtelEnabled, OTLP gRPC export of
// traces, metrics and logs plus host and runtime metrics. The returned
// function flushes and stops every provider that was started.
func Init(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	logger := logrus.WithField("component", "telemetry")

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.OtelEnabled {
		logger.Info("OTLP export disabled, using no-op providers")
		return func(context.Context) error { return nil }, nil
	}

	logger.WithFields(logrus.Fields{
		"endpoint": cfg.OtelEndpoint,
		"insecure": cfg.OtelInsecure,
	}).Info("Initializing OpenTelemetry")

	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	res, err := newResource(initCtx, cfg)
	if err != nil {
		return nil, err
	}

	var shutdownFuncs []shutdownFunc
	var initErr error

	tp, err := newTracerProvider(initCtx, cfg, res)
	if err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("tracer init failed: %w", err))
	} else {
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	}

	mp, err := newMeterProvider(initCtx, cfg, res)
	if err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("meter init failed: %w", err))
	} else {
		otel.SetMeterProvider(mp)
		shutdownFuncs = append(shutdownFuncs, mp.Shutdown)

		if err := host.Start(host.WithMeterProvider(mp)); err != nil {
			logger.WithError(err).Warn("Host metrics instrumentation failed to start")
		}
		if err := otelruntime.Start(
			otelruntime.WithMeterProvider(mp),
			otelruntime.WithMinimumReadMemStatsInterval(time.Second),
		); err != nil {
			logger.WithError(err).Warn("Runtime metrics instrumentation failed to start")
		}
	}

	lp, err := newLoggerProvider(initCtx, cfg, res)
	if err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("logger init failed: %w", err))
	} else {
		logglobal.SetLoggerProvider(lp)
		shutdownFuncs = append(shutdownFuncs, lp.Shutdown)
	}

	shutdown := masterShutdown(shutdownFuncs, cfg.ShutdownOtelMinTimeout)
	if initErr != nil {
		logger.WithError(initErr).Error("OpenTelemetry initialization finished with errors")
		return shutdown, initErr
	}

	logger.Info("OpenTelemetry initialization complete")
	return shutdown, nil
}

func newResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithProcess(),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(ServiceAttributes(cfg)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTel resource: %w", err)
	}
	return res, nil
}

func transportCredentials(cfg *config.Config) credentials.TransportCredentials {
	if cfg.OtelInsecure {
		return insecure.NewCredentials()
	}
	return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
}

func newTracerProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OtelEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(transportCredentials(cfg))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(cfg.OtelBatchTimeout)),
	), nil
}

func newMeterProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OtelEndpoint),
		otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(transportCredentials(cfg))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OtelMetricInterval))),
	), nil
}

func newLoggerProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(cfg.OtelEndpoint),
		otlploggrpc.WithDialOption(grpc.WithTransportCredentials(transportCredentials(cfg))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter, sdklog.WithExportTimeout(cfg.OtelBatchTimeout))),
	), nil
}

// masterShutdown stops providers in reverse start order so the logger
// provider can still flush records emitted while tracing shuts down.
func masterShutdown(funcs []shutdownFunc, perComponent time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		logger := logrus.WithField("component", "telemetry")
		var errs error
		for i := len(funcs) - 1; i >= 0; i-- {
			cctx, cancel := context.WithTimeout(ctx, perComponent)
			if err := funcs[i](cctx); err != nil {
				logger.WithError(err).Error("OTel component shutdown failed")
				errs = errors.Join(errs, err)
			}
			cancel()
		}
		return errs
	}
}
