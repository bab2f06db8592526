package store

import (
	"testing"

	"digimarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookA = models.Product{ID: "a", Name: "Produk A", Price: 100}
	bookB = models.Product{ID: "b", Name: "Produk B", Price: 200}
)

func TestAddToCart(t *testing.T) {
	cart := addToCart(nil, bookA)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	cart = addToCart(cart, bookA)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	cart = addToCart(cart, bookB)
	require.Len(t, cart, 2)
	assert.Equal(t, "b", cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	cart := addToCart(addToCart(nil, bookA), bookB)

	t.Run("positive delta", func(t *testing.T) {
		got := updateQuantity(cart, "a", 3)
		assert.Equal(t, 4, got[0].Quantity)
		assert.Equal(t, 1, got[1].Quantity)
	})

	t.Run("clamps at one, never removes", func(t *testing.T) {
		got := updateQuantity(cart, "a", -100)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := updateQuantity(cart, "zz", 5)
		assert.Equal(t, cart, got)
	})
}

func TestRemoveFromCart(t *testing.T) {
	cart := addToCart(addToCart(nil, bookA), bookB)

	got := removeFromCart(cart, "a")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	assert.Len(t, removeFromCart(got, "zz"), 1)
}

func TestToggleWishlist(t *testing.T) {
	list := toggleWishlist(nil, bookA)
	require.Len(t, list, 1)

	// Toggling twice is the identity.
	list = toggleWishlist(list, bookA)
	assert.Empty(t, list)

	list = toggleWishlist(toggleWishlist(nil, bookA), bookB)
	list = toggleWishlist(list, bookA)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestRecordPurchase(t *testing.T) {
	items := []models.CartItem{
		{Product: bookA, Quantity: 3},
		{Product: bookB, Quantity: 1},
	}

	purchased := recordPurchase(nil, items)
	require.Len(t, purchased, 2)

	// Quantity does not survive into ownership.
	assert.Equal(t, bookA, purchased[0])

	// Re-purchasing owned items never duplicates them.
	purchased = recordPurchase(purchased, items[:1])
	assert.Len(t, purchased, 2)
}

func TestToggleModule(t *testing.T) {
	progress := toggleModule(map[string][]string{}, "c-1", "Modul A")
	progress = toggleModule(progress, "c-1", "Modul B")
	assert.Equal(t, []string{"Modul A", "Modul B"}, progress["c-1"])

	// Toggling off keeps the rest of the set intact.
	progress = toggleModule(progress, "c-1", "Modul A")
	assert.Equal(t, []string{"Modul B"}, progress["c-1"])

	// Each product tracks its own set.
	progress = toggleModule(progress, "c-2", "Modul A")
	assert.Equal(t, []string{"Modul A"}, progress["c-2"])
	assert.Equal(t, []string{"Modul B"}, progress["c-1"])
}

func TestToggleModuleDoesNotMutateInput(t *testing.T) {
	original := map[string][]string{"c-1": {"Modul A"}}
	_ = toggleModule(original, "c-1", "Modul A")
	assert.Equal(t, []string{"Modul A"}, original["c-1"])
}

func TestUpsertProduct(t *testing.T) {
	products := []models.Product{bookA, bookB}

	t.Run("replaces in place", func(t *testing.T) {
		updated := bookA
		updated.Price = 999
		got := upsertProduct(products, updated)
		require.Len(t, got, 2)
		assert.Equal(t, 999, got[0].Price)
		assert.Equal(t, 100, products[0].Price)
	})

	t.Run("prepends new products", func(t *testing.T) {
		got := upsertProduct(products, models.Product{ID: "c", Name: "Produk C"})
		require.Len(t, got, 3)
		assert.Equal(t, "c", got[0].ID)
	})
}

func TestDeleteProductKeepsReviews(t *testing.T) {
	products := []models.Product{bookA, bookB}
	reviews := []models.Review{{ID: "r1", ProductID: "a", Rating: 5}}

	got := removeProduct(products, "a")
	require.Len(t, got, 1)

	// Review deletion is never cascaded.
	assert.Len(t, reviews, 1)
}

func TestReviewReducers(t *testing.T) {
	reviews := appendReview(nil, models.Review{ID: "r1", ProductID: "a", Rating: 4})
	reviews = appendReview(reviews, models.Review{ID: "r2", ProductID: "a", Rating: 2})
	require.Len(t, reviews, 2)

	t.Run("replace is whole-value", func(t *testing.T) {
		got := replaceReview(reviews, models.Review{ID: "r1", ProductID: "a", Rating: 1, Comment: "Revisi"})
		assert.Equal(t, 1, got[0].Rating)
		assert.Equal(t, "Revisi", got[0].Comment)
		assert.Equal(t, 2, got[1].Rating)
	})

	t.Run("delete", func(t *testing.T) {
		got := deleteReview(reviews, "r1")
		require.Len(t, got, 1)
		assert.Equal(t, "r2", got[0].ID)
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		assert.Len(t, deleteReview(reviews, "zz"), 2)
	})
}
