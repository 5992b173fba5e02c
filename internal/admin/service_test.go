package admin

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextlayer-studio/storefront-backend/pkg/auth"
	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/security"
)

type stubCatalog struct {
	products []models.Product
}

func (s *stubCatalog) List(context.Context) ([]models.Product, error) {
	copied := make([]models.Product, len(s.products))
	copy(copied, s.products)
	return copied, nil
}

func jwtTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "nextlayer", ExpirationMinutes: 60}
}

func newAdminService(t *testing.T) Service {
	t.Helper()

	hash, err := security.HashPassword("admin", config.PasswordConfig{
		ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32,
	})
	require.NoError(t, err)

	offer := 38000
	catalog := &stubCatalog{products: []models.Product{
		{ID: "3", Name: "Maceta Geométrica", Description: "Low-poly", Price: 12000, Category: enums.ProductCategoryDecor, Position: 0},
		{ID: "5", Name: "Lámpara Luna Litofanía", Price: 45000, OfferPrice: &offer, Category: enums.ProductCategoryDecor, Position: 1},
	}}

	svc, err := NewService(catalog, config.AdminConfig{PasswordHash: hash}, jwtTestConfig())
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	svc := newAdminService(t)

	dto, err := svc.Login(context.Background(), "admin")
	require.NoError(t, err)
	require.NotEmpty(t, dto.Token)

	claims, err := auth.ParseEditorToken(jwtTestConfig(), dto.Token)
	require.NoError(t, err)
	require.True(t, claims.Editor)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAdminService(t)

	_, err := svc.Login(context.Background(), "not-admin")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestListProductsSeedsWorkingCopy(t *testing.T) {
	svc := newAdminService(t)

	dtos, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	require.Equal(t, "3", dtos[0].ID)
	require.Equal(t, 16, dtos[1].DiscountPercent)
}

func TestCreateProductMintsTimestampID(t *testing.T) {
	svc := newAdminService(t)
	before := time.Now().UnixMilli()

	dto, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:     "Llavero",
		Price:    2000,
		Category: "Figuras",
	})
	require.NoError(t, err)
	require.NotEmpty(t, dto.ID)

	minted, err := strconv.ParseInt(dto.ID, 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, minted, before)

	dtos, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 3)
	require.Equal(t, dto.ID, dtos[2].ID)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newAdminService(t)

	cases := []ProductInput{
		{Name: "", Price: 100, Category: "Figuras"},
		{Name: "X", Price: 0, Category: "Figuras"},
		{Name: "X", Price: 100, Category: "Juguetes"},
	}
	for _, input := range cases {
		_, err := svc.CreateProduct(context.Background(), input)
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}

func TestUpdateProduct(t *testing.T) {
	svc := newAdminService(t)

	offer := 9000
	dto, err := svc.UpdateProduct(context.Background(), "3", ProductInput{
		Name:       "Maceta Geométrica XL",
		Price:      15000,
		OfferPrice: &offer,
		Category:   "Decoración",
	})
	require.NoError(t, err)
	require.Equal(t, "3", dto.ID)
	require.Equal(t, 15000, dto.Price)
	require.Equal(t, 40, dto.DiscountPercent)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newAdminService(t)

	_, err := svc.UpdateProduct(context.Background(), "missing", ProductInput{
		Name: "X", Price: 100, Category: "Figuras",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteProduct(t *testing.T) {
	svc := newAdminService(t)

	require.NoError(t, svc.DeleteProduct(context.Background(), "3"))

	dtos, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 1)

	err = svc.DeleteProduct(context.Background(), "3")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSnapshotMirrorsSeedShape(t *testing.T) {
	svc := newAdminService(t)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(snapshot, "["))
	require.Contains(t, snapshot, `"id": "3"`)
	require.Contains(t, snapshot, `"imageUrl"`)
	require.Contains(t, snapshot, `"offerPrice": 38000`)
	// Products without an offer omit the key entirely.
	require.Equal(t, 1, strings.Count(snapshot, "offerPrice"))
}

func TestEditsNeverTouchTheCatalog(t *testing.T) {
	hash, err := security.HashPassword("admin", config.PasswordConfig{
		ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32,
	})
	require.NoError(t, err)

	catalog := &stubCatalog{products: []models.Product{
		{ID: "3", Name: "Maceta Geométrica", Price: 12000, Category: enums.ProductCategoryDecor},
	}}
	svc, err := NewService(catalog, config.AdminConfig{PasswordHash: hash}, jwtTestConfig())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), "3"))

	require.Len(t, catalog.products, 1, "working copy edits must not reach the source")
}
