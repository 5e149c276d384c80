package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/narender/cellar-store/common/config"
	db "github.com/narender/cellar-store/common/db"
	commonhttp "github.com/narender/cellar-store/common/http"
	"github.com/narender/cellar-store/common/lifecycle"
	commonlog "github.com/narender/cellar-store/common/log"
	"github.com/narender/cellar-store/common/telemetry"
	"github.com/narender/cellar-store/common/telemetry/metric"
	"github.com/narender/cellar-store/storefront-service/src/cart"
	"github.com/narender/cellar-store/storefront-service/src/handlers"
	"github.com/narender/cellar-store/storefront-service/src/repositories"
	"github.com/narender/cellar-store/storefront-service/src/services"
)

func main() {
	ctx := context.Background()

	// --- Configuration Loading ---
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.Log()

	// --- Initialization (Telemetry & Logging) ---
	shutdownTelemetry, err := telemetry.Init(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize telemetry")
	}
	logger := commonlog.Init(cfg)

	// --- Catalog, Service and Handler Initialization ---
	repo := repositories.NewProductRepository(db.NewFileDatabase(cfg.DataFilePath, logger), logger)
	productCatalog, appErr := repo.LoadCatalog(ctx)
	if appErr != nil {
		logger.Error("Failed to load product catalog",
			slog.String("path", cfg.DataFilePath),
			slog.String("error_code", appErr.Code),
			slog.Any("error", appErr))
		_ = shutdownTelemetry(ctx)
		os.Exit(1)
	}

	inventoryGauge, err := metric.RegisterInventoryGauge(productCatalog.Inventory)
	if err != nil {
		logger.Warn("Inventory gauge unavailable", slog.Any("error", err))
	}

	service := services.NewProductService(productCatalog, cart.NewCounter(cfg.CartLimit), cfg.PageSize, logger)
	handler := handlers.NewProductHandler(service, cfg.ServiceName, cfg.DefaultCategory, logger)

	// --- Fiber App Setup ---
	app := commonhttp.NewApp(commonhttp.DefaultAppConfig(cfg.ServiceName, logger))
	handler.RegisterRoutes(app)

	// --- Server Startup ---
	addr := fmt.Sprintf(":%s", cfg.StorefrontPort)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting to listen",
			slog.String("address", addr),
			slog.Int("products", productCatalog.Len()))
		serverErr <- app.Listen(addr)
	}()

	runCtx, cancel := context.WithCancelCause(ctx)
	go func() {
		if err := <-serverErr; err != nil {
			logger.Error("Server listener failed", slog.Any("error", err))
			cancel(err)
		}
	}()

	err = lifecycle.WaitForGracefulShutdown(runCtx, cfg.ShutdownTotalTimeout,
		lifecycle.Task{
			Name:     "http server",
			Timeout:  cfg.ShutdownServerTimeout,
			Shutdown: (&lifecycle.FiberShutdownAdapter{App: app}).Shutdown,
		},
		lifecycle.Task{
			Name:    "inventory gauge",
			Timeout: cfg.ShutdownOtelMinTimeout,
			Shutdown: func(context.Context) error {
				if inventoryGauge == nil {
					return nil
				}
				return inventoryGauge.Unregister()
			},
		},
		lifecycle.Task{
			Name:     "telemetry",
			Timeout:  cfg.ShutdownOtelMinTimeout,
			Shutdown: shutdownTelemetry,
		},
	)
	cancel(nil)

	if cause := context.Cause(runCtx); cause != nil && !errors.Is(cause, context.Canceled) {
		os.Exit(1)
	}
	if err != nil {
		os.Exit(1)
	}
}
