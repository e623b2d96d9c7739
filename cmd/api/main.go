package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mohit-1289/martx-backend/api/routes"
	"github.com/mohit-1289/martx-backend/internal/cart"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/mohit-1289/martx-backend/internal/orders"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/internal/theme"
	"github.com/mohit-1289/martx-backend/pkg/config"
	"github.com/mohit-1289/martx-backend/pkg/db"
	"github.com/mohit-1289/martx-backend/pkg/fakestore"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/mohit-1289/martx-backend/pkg/metrics"
	redisclient "github.com/mohit-1289/martx-backend/pkg/redis"
)

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

	archiveClient, err := db.New(context.Background(), cfg.Archive, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open order archive", err)
		os.Exit(1)
	}
	defer func() {
		if err := archiveClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing order archive", err)
		}
	}()

	if cfg.Archive.AutoMigrate {
		if err := orders.AutoMigrate(archiveClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to migrate order archive", err)
			os.Exit(1)
		}
	}

	redisClient, err := redisclient.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	catalogClient, err := fakestore.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Client:       catalogClient,
		Logger:       logg,
		Metrics:      storefrontMetrics,
		DemoFallback: cfg.Catalog.DemoFallback,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	// Warm the cache up front; the demo fallback keeps this non-fatal.
	if err := catalogService.Load(context.Background()); err != nil {
		logg.Warn(context.Background(), "initial catalog load failed, will retry on demand")
	}

	cartRepo, err := cart.NewRepository(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart repository", err)
		os.Exit(1)
	}

	orderRepo, err := orders.NewRepository(archiveClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create order repository", err)
		os.Exit(1)
	}

	surcharge, err := cfg.Checkout.Surcharge()
	if err != nil {
		logg.Error(context.Background(), "failed to parse shipping surcharge", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		Repo:      orderRepo,
		Logger:    logg,
		Surcharge: surcharge,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	themeService, err := theme.NewService(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create theme service", err)
		os.Exit(1)
	}

	hub, err := storefront.NewHub(storefront.HubParams{
		Catalog:   catalogService,
		CartRepo:  cartRepo,
		Orders:    orderService,
		Theme:     themeService,
		Logger:    logg,
		Metrics:   storefrontMetrics,
		Surcharge: surcharge,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront hub", err)
		os.Exit(1)
	}

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
		Handler: routes.NewRouter(cfg, logg, archiveClient, redisClient, registry, catalogService, hub),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
