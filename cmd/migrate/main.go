package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/db"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
	"github.com/nextlayer-studio/storefront-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "command: up|seed|validate")
	seedPath := flag.String("seed", "", "seed file path (defaults to the configured catalog seed)")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	path := *seedPath
	if path == "" {
		path = cfg.Catalog.SeedPath
	}

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"cmd":  *cmd,
		"seed": path,
	})

	// validate only parses the seed file, no DB needed.
	if *cmd == "validate" {
		products, err := migrate.LoadSeed(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("seed validation passed (%d products)\n", len(products))
		return
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	logg.Info(ctx, "migrate ready")

	switch *cmd {
	case "up":
		if err := migrate.Run(ctx, dbClient); err != nil {
			fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
			os.Exit(1)
		}
		if err := migrate.Seed(ctx, dbClient, path); err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}

	case "seed":
		if err := migrate.Seed(ctx, dbClient, path); err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
