package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/nextlayer-studio/storefront-backend/internal/cart"
	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/metrics"
)

// Service builds the WhatsApp handoff for a session's cart.
type Service interface {
	Checkout(ctx context.Context, session, customerName string) (*CheckoutDTO, error)
}

// CheckoutDTO carries the rendered order text and the deep link the client
// opens in a new tab.
type CheckoutDTO struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

type cartReader interface {
	Lines(ctx context.Context, session string) ([]cart.Line, error)
}

type service struct {
	carts   cartReader
	cfg     config.WhatsAppConfig
	metrics *metrics.StorefrontMetrics
}

// NewService constructs a checkout service instance.
func NewService(carts cartReader, cfg config.WhatsAppConfig, m *metrics.StorefrontMetrics) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart reader required")
	}
	if cfg.PhoneNumber == "" {
		return nil, fmt.Errorf("whatsapp phone number required")
	}
	return &service{carts: carts, cfg: cfg, metrics: m}, nil
}

func (s *service) Checkout(ctx context.Context, session, customerName string) (*CheckoutDTO, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Por favor ingresa tu nombre para el pedido.")
	}

	lines, err := s.carts.Lines(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	message := BuildMessage(customerName, lines)
	s.metrics.IncCheckoutMessage()

	return &CheckoutDTO{
		Message:     message,
		WhatsAppURL: BuildURL(s.cfg.PhoneNumber, message),
	}, nil
}
