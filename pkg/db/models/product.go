package models

import (
	"time"

	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
)

// Product is a catalog listing. IDs are stable strings chosen by the seed
// (legacy numeric ids plus millisecond-timestamp ids minted by the editor).
// Position preserves seed order, which is also display order.
type Product struct {
	ID          string                `gorm:"column:id;primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	Description string                `gorm:"column:description;not null"`
	Price       int                   `gorm:"column:price;not null"`
	OfferPrice  *int                  `gorm:"column:offer_price"`
	Category    enums.ProductCategory `gorm:"column:category;not null"`
	ImageURL    string                `gorm:"column:image_url;not null"`
	Position    int                   `gorm:"column:position;not null"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
