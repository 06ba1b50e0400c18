package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/buyyourkawa/kawa-backend/api/routes"
	"github.com/buyyourkawa/kawa-backend/internal/analytics"
	"github.com/buyyourkawa/kawa-backend/internal/auth"
	"github.com/buyyourkawa/kawa-backend/internal/catalog"
	"github.com/buyyourkawa/kawa-backend/internal/clients"
	"github.com/buyyourkawa/kawa-backend/internal/inventory"
	"github.com/buyyourkawa/kawa-backend/internal/orders"
	"github.com/buyyourkawa/kawa-backend/internal/seed"
	"github.com/buyyourkawa/kawa-backend/pkg/config"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
	"github.com/buyyourkawa/kawa-backend/pkg/metrics"
	"github.com/buyyourkawa/kawa-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Info(context.Background(), "redis not configured, login throttling disabled")
	}

	clientStore := clients.NewStore()
	catalogStore := catalog.NewStore()
	orderLedger := orders.NewLedger()

	if cfg.Catalog.SeedSampleData {
		loaded := seed.Products(context.Background(), catalogStore, logg)
		logg.Info(logg.WithField(context.Background(), "products", loaded), "sample catalog seeded")
	}

	stockLedger, err := inventory.NewLedger(catalogStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory ledger", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(cfg.JWT, cfg.Admin)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(clientStore, catalogStore, stockLedger, orderLedger, cfg.Orders.MaxLineQty)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(orderLedger, clientStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(routes.Deps{
		Config:           cfg,
		Logger:           logg,
		Redis:            redisClient,
		Metrics:          httpMetrics,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AuthService:      authService,
		ClientStore:      clientStore,
		Catalog:          catalogStore,
		OrderService:     orderService,
		AnalyticsService: analyticsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var shutdownErr error
		shutdownErr = multierr.Append(shutdownErr, server.Shutdown(shutdownCtx))
		if redisClient != nil {
			shutdownErr = multierr.Append(shutdownErr, redisClient.Close())
		}
		if shutdownErr != nil {
			logg.Error(ctx, "shutdown finished with errors", shutdownErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
