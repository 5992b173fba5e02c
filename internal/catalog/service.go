package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
)

// Service exposes storefront catalog reads.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id string) (*ProductDTO, error)
}

// ListProductsInput carries the storefront filter controls. Empty category is
// treated as the "all" wildcard.
type ListProductsInput struct {
	Category string
	Query    string
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error) {
	category := input.Category
	if category == "" {
		category = enums.CategoryAll
	}
	if category != enums.CategoryAll && !enums.ProductCategory(category).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", category))
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}

	matched := Filter(products, category, input.Query)
	dtos := make([]ProductDTO, 0, len(matched))
	for i := range matched {
		dtos = append(dtos, *NewProductDTO(&matched[i]))
	}
	return dtos, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return NewProductDTO(product), nil
}
