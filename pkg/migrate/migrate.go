package migrate

import (
	"context"
	"fmt"

	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/db"
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

// Run applies the schema. The catalog is small enough that gorm's
// AutoMigrate covers it without a versioned migration directory.
func Run(ctx context.Context, client *db.Client) error {
	if err := client.DB().WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// MaybeRunDev migrates and seeds automatically when the app is running in dev
// mode and the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.App.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "seed": cfg.Catalog.SeedPath})
	logg.Info(ctx, "running schema migration (dev auto-run)")

	if err := Run(ctx, client); err != nil {
		return err
	}
	if err := Seed(ctx, client, cfg.Catalog.SeedPath); err != nil {
		return err
	}

	logg.Info(ctx, "migration and seed completed")
	return nil
}
