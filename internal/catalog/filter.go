package catalog

import (
	"strings"

	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
)

// Filter narrows the catalog to the lines matching both predicates. Category
// matches exactly, or passes everything for the "all" wildcard. The query is a
// case-insensitive substring test against name or description; an empty query
// matches everything. Input order is preserved and the input slice is never
// mutated.
func Filter(products []models.Product, category, query string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Product, 0, len(products))
	for _, product := range products {
		if !matchesCategory(product, category) {
			continue
		}
		if !matchesQuery(product, needle) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

func matchesCategory(product models.Product, category string) bool {
	if category == "" || category == enums.CategoryAll {
		return true
	}
	return string(product.Category) == category
}

func matchesQuery(product models.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name), needle) ||
		strings.Contains(strings.ToLower(product.Description), needle)
}
