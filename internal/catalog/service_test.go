package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Product{}))

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc, gdb
}

func seedTestProducts(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	offer := 1000
	high := 4231
	products := []models.Product{
		{ID: "1", Name: "Soporte de celular ", Description: "Queres dejar tu celular?", Price: 25000, OfferPrice: &offer, Category: enums.ProductCategoryAccessories, Position: 0},
		{ID: "3", Name: "Maceta Geométrica", Description: "Diseño low-poly moderno.", Price: 12000, Category: enums.ProductCategoryDecor, Position: 1},
		{ID: "1763662608076", Name: "A", Description: "", Price: 3214, OfferPrice: &high, Category: enums.ProductCategoryFigures, Position: 2},
	}
	require.NoError(t, gdb.Create(&products).Error)
}

func TestListProductsDerivesPricing(t *testing.T) {
	svc, gdb := newTestService(t)
	seedTestProducts(t, gdb)

	dtos, err := svc.ListProducts(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, dtos, 3)

	// Display order follows seed position.
	require.Equal(t, "1", dtos[0].ID)
	require.Equal(t, "3", dtos[1].ID)

	require.True(t, dtos[0].HasOffer)
	require.Equal(t, 1000, dtos[0].EffectivePrice)
	require.Equal(t, 96, dtos[0].DiscountPercent)
	require.Equal(t, "$25.000", dtos[0].PriceDisplay)
	require.Equal(t, "$1.000", dtos[0].EffectivePriceDisplay)

	require.False(t, dtos[1].HasOffer)
	require.Equal(t, 12000, dtos[1].EffectivePrice)

	// Offer above the list price is ignored.
	require.False(t, dtos[2].HasOffer)
	require.Equal(t, 3214, dtos[2].EffectivePrice)
	require.Zero(t, dtos[2].DiscountPercent)
}

func TestListProductsFiltersByCategoryAndQuery(t *testing.T) {
	svc, gdb := newTestService(t)
	seedTestProducts(t, gdb)

	dtos, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "Decoración", Query: "maceta"})
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	require.Equal(t, "3", dtos[0].ID)
}

func TestListProductsRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "Juguetes"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
