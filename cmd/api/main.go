package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/nextlayer-studio/storefront-backend/api/routes"
	"github.com/nextlayer-studio/storefront-backend/internal/admin"
	"github.com/nextlayer-studio/storefront-backend/internal/cart"
	"github.com/nextlayer-studio/storefront-backend/internal/catalog"
	checkoutsvc "github.com/nextlayer-studio/storefront-backend/internal/checkout"
	"github.com/nextlayer-studio/storefront-backend/internal/chat"
	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/db"
	"github.com/nextlayer-studio/storefront-backend/pkg/env"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
	"github.com/nextlayer-studio/storefront-backend/pkg/metrics"
	"github.com/nextlayer-studio/storefront-backend/pkg/migrate"
	"github.com/nextlayer-studio/storefront-backend/pkg/redis"
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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	defer closeAll(logg, dbClient, redisClient)

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migration", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStorefrontMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewRedisStore(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cartStore, catalogRepo, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cartService, cfg.WhatsApp, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var generator chat.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = chat.NewGeminiGenerator(context.Background(), cfg.Gemini)
		if err != nil {
			logg.Error(context.Background(), "failed to create assistant client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "no assistant credential configured, chat runs in fallback mode")
	}
	chatService, err := chat.NewService(generator, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(catalogRepo, cfg.Admin, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Catalog:  catalogService,
			Cart:     cartService,
			Checkout: checkoutService,
			Chat:     chatService,
			Admin:    adminService,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func closeAll(logg *logger.Logger, closers ...io.Closer) {
	var errs error
	for _, c := range closers {
		if c == nil {
			continue
		}
		errs = multierr.Append(errs, c.Close())
	}
	if errs != nil {
		logg.Error(context.Background(), "error closing resources", errs)
	}
}
