package cart

import (
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/pricing"
)

// Line is one cart entry. It snapshots the product at the moment it was
// added, so later catalog edits do not disturb an open cart. JSON tags define
// the persisted slot format.
type Line struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	OfferPrice  *int   `json:"offer_price,omitempty"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`
}

// NewLine snapshots a catalog product with quantity 1.
func NewLine(product *models.Product) Line {
	line := Line{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
		ImageURL:    product.ImageURL,
		Quantity:    1,
	}
	if product.OfferPrice != nil {
		offer := *product.OfferPrice
		line.OfferPrice = &offer
	}
	return line
}

// EffectivePrice is derived on every read, never stored.
func (l Line) EffectivePrice() int {
	return pricing.Effective(l.Price, l.OfferPrice)
}

// HasOffer reports whether the snapshot carries an applicable discount.
func (l Line) HasOffer() bool {
	return pricing.HasOffer(l.Price, l.OfferPrice)
}

// Subtotal is the effective unit price times the quantity.
func (l Line) Subtotal() int {
	return l.EffectivePrice() * l.Quantity
}
