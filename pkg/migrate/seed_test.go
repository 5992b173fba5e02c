package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextlayer-studio/storefront-backend/pkg/enums"
)

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeedFile(t, `[
		{"id":"1","name":"Maceta Geométrica","description":"Low-poly","price":12000,"category":"Decoración","imageUrl":"https://example.com/1.jpg"},
		{"id":"2","name":"Lámpara Luna","description":"","price":45000,"offerPrice":38000,"category":"Decoración","imageUrl":"https://example.com/2.jpg"}
	]`)

	products, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, enums.ProductCategoryDecor, products[0].Category)
	assert.Nil(t, products[0].OfferPrice)
	assert.Equal(t, 0, products[0].Position)

	require.NotNil(t, products[1].OfferPrice)
	assert.Equal(t, 38000, *products[1].OfferPrice)
	assert.Equal(t, 1, products[1].Position)
}

func TestLoadSeedRejectsUnknownCategory(t *testing.T) {
	path := writeSeedFile(t, `[{"id":"1","name":"X","price":100,"category":"Juguetes","imageUrl":""}]`)

	_, err := LoadSeed(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Juguetes")
}

func TestLoadSeedRejectsInvalidEntries(t *testing.T) {
	cases := map[string]string{
		"missing id":     `[{"id":" ","name":"X","price":100,"category":"Figuras","imageUrl":""}]`,
		"missing name":   `[{"id":"1","name":"","price":100,"category":"Figuras","imageUrl":""}]`,
		"zero price":     `[{"id":"1","name":"X","price":0,"category":"Figuras","imageUrl":""}]`,
		"negative price": `[{"id":"1","name":"X","price":-5,"category":"Figuras","imageUrl":""}]`,
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSeed(writeSeedFile(t, contents))
			require.Error(t, err)
		})
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
