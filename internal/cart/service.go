package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
	"github.com/nextlayer-studio/storefront-backend/pkg/metrics"
)

// Service exposes session cart operations.
type Service interface {
	GetCart(ctx context.Context, session string) (*CartDTO, error)
	AddItem(ctx context.Context, session, productID string) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, session, productID string, delta int) (*CartDTO, error)
	RemoveItem(ctx context.Context, session, productID string) (*CartDTO, error)
	Lines(ctx context.Context, session string) ([]Line, error)
}

type productLoader interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type service struct {
	store    Store
	products productLoader
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
}

// NewService constructs a cart service instance.
func NewService(store Store, products productLoader, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, products: products, logg: logg, metrics: m}, nil
}

// hydrate loads the session's cart. Read failures degrade to an empty cart
// with a warning; the shopper never sees a broken cart because a slot went
// stale or corrupt.
func (s *service) hydrate(ctx context.Context, session string) *Cart {
	lines, err := s.store.Load(ctx, session)
	if err != nil {
		ctx = s.logg.WithCartSession(ctx, session)
		s.logg.Warn(ctx, fmt.Sprintf("cart hydration failed, starting empty: %v", err))
		return &Cart{Lines: []Line{}}
	}
	return &Cart{Lines: lines}
}

func (s *service) persist(ctx context.Context, session string, c *Cart) error {
	if err := s.store.Save(ctx, session, c.Lines); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting cart")
	}
	return nil
}

func validateSession(session string) error {
	if strings.TrimSpace(session) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	return nil
}

func (s *service) GetCart(ctx context.Context, session string) (*CartDTO, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	return NewCartDTO(s.hydrate(ctx, session)), nil
}

func (s *service) Lines(ctx context.Context, session string) ([]Line, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, session).Lines, nil
}

func (s *service) AddItem(ctx context.Context, session, productID string) (*CartDTO, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	c := s.hydrate(ctx, session)
	c.Add(product)
	if err := s.persist(ctx, session, c); err != nil {
		return nil, err
	}

	s.metrics.IncCartMutation("add")
	return NewCartDTO(c), nil
}

func (s *service) UpdateQuantity(ctx context.Context, session, productID string, delta int) (*CartDTO, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	c := s.hydrate(ctx, session)
	// A delta that would drop the quantity to zero or below is silently
	// ignored; removal is an explicit separate operation.
	if c.UpdateQuantity(productID, delta) {
		if err := s.persist(ctx, session, c); err != nil {
			return nil, err
		}
		s.metrics.IncCartMutation("update_quantity")
	}
	return NewCartDTO(c), nil
}

func (s *service) RemoveItem(ctx context.Context, session, productID string) (*CartDTO, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	c := s.hydrate(ctx, session)
	if c.Remove(productID) {
		if err := s.persist(ctx, session, c); err != nil {
			return nil, err
		}
		s.metrics.IncCartMutation("remove")
	}
	return NewCartDTO(c), nil
}
