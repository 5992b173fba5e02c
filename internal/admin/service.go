package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nextlayer-studio/storefront-backend/pkg/auth"
	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/security"
)

// Service exposes the local catalog editor. Edits land in an in-memory
// working copy, never in the store; Snapshot exports the copy for a human to
// merge into the seed file.
type Service interface {
	Login(ctx context.Context, password string) (*TokenDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	CreateProduct(ctx context.Context, input ProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id string) error
	Snapshot(ctx context.Context) (string, error)
}

type catalogLoader interface {
	List(ctx context.Context) ([]models.Product, error)
}

type service struct {
	catalog  catalogLoader
	adminCfg config.AdminConfig
	jwtCfg   config.JWTConfig
	now      func() time.Time

	mu       sync.Mutex
	loaded   bool
	products []models.Product
}

// NewService constructs an admin service instance.
func NewService(catalog catalogLoader, adminCfg config.AdminConfig, jwtCfg config.JWTConfig) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if adminCfg.PasswordHash == "" {
		return nil, fmt.Errorf("admin password hash required")
	}
	return &service{
		catalog:  catalog,
		adminCfg: adminCfg,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Login(_ context.Context, password string) (*TokenDTO, error) {
	ok, err := security.VerifyPassword(password, s.adminCfg.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Contraseña incorrecta")
	}

	token, err := auth.MintEditorToken(s.jwtCfg, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting editor token")
	}
	return &TokenDTO{Token: token}, nil
}

// ensureLoaded seeds the working copy from the catalog on first use. Later
// catalog changes are deliberately ignored; the editor operates on its own
// copy until the process restarts.
func (s *service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	products, err := s.catalog.List(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading working copy")
	}
	s.products = products
	s.loaded = true
	return nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	dtos := make([]ProductDTO, 0, len(s.products))
	for _, product := range s.products {
		dtos = append(dtos, newProductDTO(product))
	}
	return dtos, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	for _, existing := range s.products {
		if existing.ID == product.ID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product id %q already exists", product.ID))
		}
	}

	product.Position = len(s.products)
	s.products = append(s.products, product)

	dto := newProductDTO(product)
	return &dto, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, input ProductInput) (*ProductDTO, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		product.ID = id
		product.Position = s.products[i].Position
		s.products[i] = product

		dto := newProductDTO(product)
		return &dto, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *service) Snapshot(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return "", err
	}

	entries := make([]snapshotEntry, 0, len(s.products))
	for _, product := range s.products {
		entry := snapshotEntry{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Category:    string(product.Category),
			ImageURL:    product.ImageURL,
		}
		if product.OfferPrice != nil {
			offer := *product.OfferPrice
			entry.OfferPrice = &offer
		}
		entries = append(entries, entry)
	}

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding snapshot")
	}
	return string(raw), nil
}

func productFromInput(input ProductInput) (models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price <= 0 {
		return models.Product{}, pkgerrors.New(pkgerrors.CodeValidation, "El nombre y el precio son obligatorios")
	}
	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return models.Product{}, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	product := models.Product{
		ID:          strings.TrimSpace(input.ID),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		ImageURL:    input.ImageURL,
	}
	if input.OfferPrice != nil {
		offer := *input.OfferPrice
		product.OfferPrice = &offer
	}
	return product, nil
}
