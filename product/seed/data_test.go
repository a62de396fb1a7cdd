package seed

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsCoverLegacyIdentifierRange(t *testing.T) {
	require.Len(t, Products, 30)

	seen := map[uuid.UUID]bool{}
	for n, p := range Products {
		expected := uuid.MustParse(fmt.Sprintf("20000000-0000-0000-0000-%012d", n+1))
		assert.Equal(t, expected, p.ID, "products must fill the legacy namespace contiguously")
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestProductsReferenceKnownCategories(t *testing.T) {
	categories := map[uuid.UUID]bool{}
	for _, c := range Categories {
		categories[c.ID] = true
	}

	for _, p := range Products {
		assert.Truef(t, categories[p.CategoryID], "product %s references unknown category", p.Name)
		assert.True(t, p.Price.IsPositive(), "prices must be positive")
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Stock, int32(0))
	}
}
