package catalog

import (
	"github.com/nextlayer-studio/storefront-backend/pkg/currency"
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/pricing"
)

// ProductDTO is the catalog payload returned to clients. Effective price and
// offer flags are derived on read so a stale snapshot can never leak through.
type ProductDTO struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	Price                 int    `json:"price"`
	OfferPrice            *int   `json:"offer_price,omitempty"`
	Category              string `json:"category"`
	ImageURL              string `json:"image_url"`
	EffectivePrice        int    `json:"effective_price"`
	HasOffer              bool   `json:"has_offer"`
	DiscountPercent       int    `json:"discount_percent,omitempty"`
	PriceDisplay          string `json:"price_display"`
	EffectivePriceDisplay string `json:"effective_price_display"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:                    product.ID,
		Name:                  product.Name,
		Description:           product.Description,
		Price:                 product.Price,
		Category:              string(product.Category),
		ImageURL:              product.ImageURL,
		EffectivePrice:        pricing.Effective(product.Price, product.OfferPrice),
		HasOffer:              pricing.HasOffer(product.Price, product.OfferPrice),
		PriceDisplay:          currency.FormatARS(product.Price),
		EffectivePriceDisplay: currency.FormatARS(pricing.Effective(product.Price, product.OfferPrice)),
	}
	if product.OfferPrice != nil {
		offer := *product.OfferPrice
		dto.OfferPrice = &offer
	}
	if dto.HasOffer {
		dto.DiscountPercent = pricing.DiscountPercent(product.Price, product.OfferPrice)
	}
	return dto
}
