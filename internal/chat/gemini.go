package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nextlayer-studio/storefront-backend/pkg/config"
)

const persona = `Eres un asistente virtual para "NextLayer", un emprendimiento innovador de impresión 3D y diseño.

Tono: Profesional, minimalista, emprendedor y servicial.

Objetivo:
1. Asesorar sobre materiales (PLA, PETG, Flex, Resina) y sus aplicaciones.
2. Ayudar a navegar el catálogo de productos.
3. Explicar que al ser un emprendimiento, ofrecemos atención personalizada y diseños a medida.

Información clave:
- Ubicación: Córdoba, Argentina.
- Pagos/Envíos: Se coordinan vía WhatsApp al finalizar el pedido.
- Filosofía: Diseño funcional y estética minimalista.

Si no sabes un precio exacto, sugiere revisar la sección "Catálogo" de la web. Mantén las respuestas breves y directas.`

// Generator produces one assistant completion per shopper message.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// geminiGenerator adapts the Gemini API to the Generator port.
type geminiGenerator struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
}

// NewGeminiGenerator builds the production generator. Callers must ensure an
// API key is configured; keyless setups skip construction entirely and rely
// on the service's fixed advisory reply.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &geminiGenerator{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, message string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(message, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(persona, genai.RoleUser),
		MaxOutputTokens:   g.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}
