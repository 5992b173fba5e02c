package chat

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
	"github.com/nextlayer-studio/storefront-backend/pkg/metrics"
)

// Fixed shopper-facing replies. Raw provider errors are logged, never shown.
const (
	ReplyUnavailable = "⚠️ El chat no está disponible en este entorno (Falta API Key). Por favor contáctanos por WhatsApp."
	ReplyEmpty       = "Lo siento, no pude procesar tu respuesta en este momento."
	ReplyError       = "Hubo un error al conectar con el asistente. Por favor intenta más tarde."
)

// Service answers shopper messages. One provider call per message, no retry.
type Service interface {
	SendMessage(ctx context.Context, message string) (*ReplyDTO, error)
}

// ReplyDTO carries the assistant's text.
type ReplyDTO struct {
	Reply string `json:"reply"`
}

type service struct {
	generator Generator
	logg      *logger.Logger
	metrics   *metrics.StorefrontMetrics
}

// NewService constructs a chat service instance. A nil generator is a valid
// degraded mode for keyless environments; every message then gets the fixed
// advisory reply.
func NewService(generator Generator, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{generator: generator, logg: logg, metrics: m}, nil
}

func (s *service) SendMessage(ctx context.Context, message string) (*ReplyDTO, error) {
	if strings.TrimSpace(message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}

	if s.generator == nil {
		s.metrics.IncChatRequest("no_credential")
		return &ReplyDTO{Reply: ReplyUnavailable}, nil
	}

	reply, err := s.generator.Generate(ctx, message)
	if err != nil {
		s.logg.Error(ctx, "assistant call failed", err)
		s.metrics.IncChatRequest("fallback")
		return &ReplyDTO{Reply: ReplyError}, nil
	}
	if reply == "" {
		s.metrics.IncChatRequest("fallback")
		return &ReplyDTO{Reply: ReplyEmpty}, nil
	}

	s.metrics.IncChatRequest("ok")
	return &ReplyDTO{Reply: reply}, nil
}
