package admin

import (
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/pricing"
)

// TokenDTO carries the editor session token.
type TokenDTO struct {
	Token string `json:"token"`
}

// ProductDTO is the editor's view of a working-copy product.
type ProductDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int    `json:"price"`
	OfferPrice      *int   `json:"offer_price,omitempty"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
}

// ProductInput holds the editor payload for create and update. ID is only
// honored on create; a blank one gets a millisecond-timestamp id minted.
type ProductInput struct {
	ID          string
	Name        string
	Description string
	Price       int
	OfferPrice  *int
	Category    string
	ImageURL    string
}

func newProductDTO(product models.Product) ProductDTO {
	dto := ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
		ImageURL:    product.ImageURL,
	}
	if product.OfferPrice != nil {
		offer := *product.OfferPrice
		dto.OfferPrice = &offer
	}
	if pricing.HasOffer(product.Price, product.OfferPrice) {
		dto.DiscountPercent = pricing.DiscountPercent(product.Price, product.OfferPrice)
	}
	return dto
}

// snapshotEntry mirrors the seed file's camelCase shape so the exported text
// can be pasted straight into seed/catalog.json.
type snapshotEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	OfferPrice  *int   `json:"offerPrice,omitempty"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}
