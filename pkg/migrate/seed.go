package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/nextlayer-studio/storefront-backend/pkg/db"
	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
)

// seedProduct mirrors the catalog seed file. Offer price is optional and
// kept as a pointer so absence survives the round trip into the model.
type seedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	OfferPrice  *int   `json:"offerPrice,omitempty"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// LoadSeed parses and validates the seed file. File order becomes display
// order via Position.
func LoadSeed(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var entries []seedProduct
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	products := make([]models.Product, 0, len(entries))
	for i, entry := range entries {
		product, err := entry.toModel(i)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (s seedProduct) toModel(position int) (models.Product, error) {
	if strings.TrimSpace(s.ID) == "" {
		return models.Product{}, fmt.Errorf("missing id")
	}
	if strings.TrimSpace(s.Name) == "" {
		return models.Product{}, fmt.Errorf("missing name")
	}
	if s.Price <= 0 {
		return models.Product{}, fmt.Errorf("price must be positive, got %d", s.Price)
	}
	category, err := enums.ParseProductCategory(s.Category)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		OfferPrice:  s.OfferPrice,
		Category:    category,
		ImageURL:    s.ImageURL,
		Position:    position,
	}, nil
}

// Seed upserts the seed catalog. Existing rows are refreshed in place so the
// seed file stays the source of truth for the base catalog.
func Seed(ctx context.Context, client *db.Client, path string) error {
	products, err := LoadSeed(path)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	err = client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&products).Error
	if err != nil {
		return fmt.Errorf("upserting seed catalog: %w", err)
	}
	return nil
}
