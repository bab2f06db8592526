package utils

import (
	"strings"
	"testing"

	"digimarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFixture(id string) (models.Product, bool) {
	if id == "c-1" {
		return models.Product{ID: "c-1", Name: "Kursus Go"}, true
	}
	return models.Product{}, false
}

func TestSplitRecommendation(t *testing.T) {
	t.Run("plain text yields one segment", func(t *testing.T) {
		got := SplitRecommendation("Halo, ada yang bisa saya bantu?", lookupFixture)
		require.Len(t, got, 1)
		assert.Equal(t, "text", got[0].Type)
	})

	t.Run("marker resolves to a product card", func(t *testing.T) {
		got := SplitRecommendation("Saya rekomendasikan kursus ini. [PRODUCT_ID:c-1]", lookupFixture)
		require.Len(t, got, 2)
		assert.Equal(t, "text", got[0].Type)
		assert.Equal(t, "product", got[1].Type)
		require.NotNil(t, got[1].Product)
		assert.Equal(t, "c-1", got[1].Product.ID)
	})

	t.Run("unknown id becomes a placeholder", func(t *testing.T) {
		got := SplitRecommendation("Coba ini [PRODUCT_ID:deleted-99] ya.", lookupFixture)
		require.Len(t, got, 3)
		assert.Equal(t, "placeholder", got[1].Type)
		assert.Equal(t, "deleted-99", got[1].Text)
		assert.Equal(t, " ya.", got[2].Text)
	})

	t.Run("multiple markers keep their order", func(t *testing.T) {
		got := SplitRecommendation("[PRODUCT_ID:c-1] atau [PRODUCT_ID:c-1]", lookupFixture)
		require.Len(t, got, 3)
		assert.Equal(t, "product", got[0].Type)
		assert.Equal(t, "text", got[1].Type)
		assert.Equal(t, "product", got[2].Type)
	})

	t.Run("whitespace inside the marker is trimmed", func(t *testing.T) {
		got := SplitRecommendation("[PRODUCT_ID: c-1 ]", lookupFixture)
		require.Len(t, got, 1)
		assert.Equal(t, "product", got[0].Type)
	})
}

func TestBuildCatalogContext(t *testing.T) {
	products := []models.Product{
		{ID: "eb-1", Name: "Panduan SEO", Category: models.CategoryEbook, Price: 150000, Rating: 4.5},
		{ID: "c-1", Name: "Kursus Go", Category: models.CategoryCourse, Price: 1850000, Rating: 4.9},
	}

	ctx := BuildCatalogContext(products)
	lines := strings.Split(ctx, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ID: eb-1")
	assert.Contains(t, lines[0], "Rp 150.000")
	assert.Contains(t, lines[1], "Rating: 4.9")
}

func TestBuildCatalogContextCapsSample(t *testing.T) {
	products := make([]models.Product, 150)
	for i := range products {
		products[i] = models.Product{ID: "p", Name: "Produk"}
	}
	ctx := BuildCatalogContext(products)
	assert.Len(t, strings.Split(ctx, "\n"), catalogContextCap)
}
