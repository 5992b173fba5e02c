package cart

import "github.com/nextlayer-studio/storefront-backend/pkg/currency"

// CartDTO is the cart payload returned to clients.
type CartDTO struct {
	Lines        []LineDTO `json:"lines"`
	Count        int       `json:"count"`
	Total        int       `json:"total"`
	TotalDisplay string    `json:"total_display"`
}

// LineDTO exposes one cart line with derived pricing.
type LineDTO struct {
	ProductID          string `json:"product_id"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          int    `json:"unit_price"`
	EffectiveUnitPrice int    `json:"effective_unit_price"`
	HasOffer           bool   `json:"has_offer"`
	Subtotal           int    `json:"subtotal"`
	SubtotalDisplay    string `json:"subtotal_display"`
	ImageURL           string `json:"image_url"`
}

// NewCartDTO derives the client payload from the current lines.
func NewCartDTO(c *Cart) *CartDTO {
	dto := &CartDTO{
		Lines:        make([]LineDTO, 0, len(c.Lines)),
		Count:        c.Count(),
		Total:        c.Total(),
		TotalDisplay: currency.FormatARS(c.Total()),
	}
	for _, line := range c.Lines {
		dto.Lines = append(dto.Lines, LineDTO{
			ProductID:          line.ProductID,
			Name:               line.Name,
			Quantity:           line.Quantity,
			UnitPrice:          line.Price,
			EffectiveUnitPrice: line.EffectivePrice(),
			HasOffer:           line.HasOffer(),
			Subtotal:           line.Subtotal(),
			SubtotalDisplay:    currency.FormatARS(line.Subtotal()),
			ImageURL:           line.ImageURL,
		})
	}
	return dto
}
