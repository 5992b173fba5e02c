package catalog

import (
	"testing"

	"github.com/nextlayer-studio/storefront-backend/pkg/db/models"
	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
)

func testCatalog() []models.Product {
	offer := 38000
	return []models.Product{
		{ID: "1", Name: "Soporte de celular ", Description: "Queres dejar tu celular? es el mejor lugar.", Category: enums.ProductCategoryAccessories, Price: 25000, Position: 0},
		{ID: "2", Name: "Soporte para Auriculares", Description: "Soporte minimalista para escritorio. Material PLA resistente.", Category: enums.ProductCategoryAccessories, Price: 18500, Position: 1},
		{ID: "3", Name: "Maceta Geométrica", Description: "Diseño low-poly moderno. Ideal para suculentas.", Category: enums.ProductCategoryDecor, Price: 12000, Position: 2},
		{ID: "4", Name: "Engranaje Helicoidal", Description: "Repuesto técnico en PETG alta resistencia.", Category: enums.ProductCategoryParts, Price: 8500, Position: 3},
		{ID: "5", Name: "Lámpara Luna Litofanía", Description: "Esfera con textura lunar.", Category: enums.ProductCategoryDecor, Price: 45000, OfferPrice: &offer, Position: 4},
		{ID: "6", Name: "Organizador de Cables", Description: "Set de 5 clips organizadores para escritorio.", Category: enums.ProductCategoryAccessories, Price: 5000, Position: 5},
	}
}

func TestFilterCategoryWildcard(t *testing.T) {
	products := testCatalog()

	for _, category := range []string{"", enums.CategoryAll} {
		got := Filter(products, category, "")
		if len(got) != len(products) {
			t.Fatalf("category %q: expected %d products, got %d", category, len(products), len(got))
		}
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Filter(testCatalog(), "Decoración", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != "3" || got[1].ID != "5" {
		t.Fatalf("expected stable order [3 5], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestFilterQueryMatchesNameOrDescription(t *testing.T) {
	products := testCatalog()

	byName := Filter(products, enums.CategoryAll, "maceta")
	if len(byName) != 1 || byName[0].ID != "3" {
		t.Fatalf("expected name match on product 3, got %v", byName)
	}

	byDescription := Filter(products, enums.CategoryAll, "escritorio")
	if len(byDescription) != 2 || byDescription[0].ID != "2" || byDescription[1].ID != "6" {
		t.Fatalf("expected description matches on products 2 and 6, got %v", byDescription)
	}
}

func TestFilterCategoryAndQueryCombined(t *testing.T) {
	got := Filter(testCatalog(), "Accesorios", "soporte")
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected stable order [1 2], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	got := Filter(testCatalog(), enums.CategoryAll, "LUNA")
	if len(got) != 1 || got[0].ID != "5" {
		t.Fatalf("expected case-insensitive match on product 5, got %v", got)
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	// "luna" matches product 5 but the Repuestos category excludes it.
	got := Filter(testCatalog(), "Repuestos", "luna")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(testCatalog(), enums.CategoryAll, "impresora gigante")
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	Filter(products, "Decoración", "maceta")

	if products[0].ID != "1" || products[5].ID != "6" {
		t.Fatal("input slice order changed")
	}
}
