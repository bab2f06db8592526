package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"digimarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSnapshots is an in-memory stand-in for the GORM-backed store.
// Keys listed in corrupt simulate stored-but-unreadable values.
type memSnapshots struct {
	data    map[string][]byte
	corrupt map[string]bool
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{data: map[string][]byte{}, corrupt: map[string]bool{}}
}

func (m *memSnapshots) Load(key string, v any) (bool, error) {
	if m.corrupt[key] {
		return true, errors.New("corrupt snapshot")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *memSnapshots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestStore() (*Store, *memSnapshots) {
	snaps := newMemSnapshots()
	return New(snaps, &seqIDs{}), snaps
}

func TestSeededStore(t *testing.T) {
	s, _ := newTestStore()

	products := s.Products()
	assert.NotEmpty(t, products)

	_, found := s.ProductByID("c-1")
	assert.True(t, found)

	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Wishlist())
	assert.Empty(t, s.Purchased())
	assert.False(t, s.IsLoggedIn())
}

func TestRehydrate(t *testing.T) {
	t.Run("restores persisted collections", func(t *testing.T) {
		snaps := newMemSnapshots()
		require.NoError(t, snaps.Save(KeyPurchases, []models.Product{{ID: "c-1", Name: "Kursus"}}))
		require.NoError(t, snaps.Save(KeyProgress, map[string][]string{"c-1": {"Modul A"}}))
		require.NoError(t, snaps.Save(KeyAuth, true))

		s := New(snaps, &seqIDs{})
		s.Rehydrate()

		require.Len(t, s.Purchased(), 1)
		assert.Equal(t, []string{"Modul A"}, s.CompletedModules("c-1"))
		assert.True(t, s.IsLoggedIn())
	})

	t.Run("missing keys keep seed data", func(t *testing.T) {
		s, _ := newTestStore()
		seeded := len(s.Products())
		s.Rehydrate()
		assert.Len(t, s.Products(), seeded)
	})

	t.Run("a corrupt key never blocks the others", func(t *testing.T) {
		snaps := newMemSnapshots()
		snaps.corrupt[KeyInventory] = true
		require.NoError(t, snaps.Save(KeyAuth, true))

		s := New(snaps, &seqIDs{})
		seeded := len(s.Products())
		s.Rehydrate()

		assert.Len(t, s.Products(), seeded)
		assert.True(t, s.IsLoggedIn())
	})
}

func TestMutationsPersistTheirCollection(t *testing.T) {
	s, snaps := newTestStore()

	s.AddReview("c-1", "Budi", 5, "Mantap!", "")
	assert.Contains(t, snaps.data, KeyReviews)

	s.RecordPurchase([]models.CartItem{{Product: models.Product{ID: "c-1"}, Quantity: 1}})
	assert.Contains(t, snaps.data, KeyPurchases)

	s.ToggleModule("c-1", "Modul A")
	assert.Contains(t, snaps.data, KeyProgress)

	s.SetLoggedIn(true)
	assert.Contains(t, snaps.data, KeyAuth)

	s.UpsertProduct(models.Product{Name: "Baru", Category: models.CategoryEbook})
	assert.Contains(t, snaps.data, KeyInventory)

	// Cart and wishlist never hit storage.
	s.AddToCart("c-1")
	s.ToggleWishlist("c-2")
	assert.Len(t, snaps.data, 5)
}

func TestAddReviewAssignsIDAndDate(t *testing.T) {
	s, _ := newTestStore()

	review := s.AddReview("c-1", "Budi", 5, "Mantap!", "")
	assert.Equal(t, "id-1", review.ID)
	assert.NotEmpty(t, review.Date)

	reviews := s.ReviewsFor("c-1")
	require.NotEmpty(t, reviews)
	assert.Equal(t, review, reviews[len(reviews)-1])
}

func TestUpdateReviewRequiresExisting(t *testing.T) {
	s, _ := newTestStore()

	added := s.AddReview("c-1", "Budi", 5, "Mantap!", "")

	added.Rating = 2
	added.Comment = "Revisi"
	assert.True(t, s.UpdateReview(added))

	assert.False(t, s.UpdateReview(models.Review{ID: "missing", Rating: 1}))
}

func TestCartOperations(t *testing.T) {
	s, _ := newTestStore()

	assert.False(t, s.AddToCart("missing"))
	assert.True(t, s.AddToCart("c-1"))
	assert.True(t, s.AddToCart("c-1"))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	s.UpdateQuantity("c-1", -5)
	assert.Equal(t, 1, s.Cart()[0].Quantity)

	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestMoveWishlistToCart(t *testing.T) {
	s, _ := newTestStore()

	require.True(t, s.ToggleWishlist("c-1"))
	require.Len(t, s.Wishlist(), 1)

	assert.True(t, s.MoveWishlistToCart("c-1"))
	assert.Empty(t, s.Wishlist())
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, "c-1", s.Cart()[0].ID)

	assert.False(t, s.MoveWishlistToCart("missing"))
}

func TestMoveWishlistToCartAfterProductDeleted(t *testing.T) {
	s, _ := newTestStore()

	require.True(t, s.ToggleWishlist("c-1"))
	s.DeleteProduct("c-1")

	// The wishlisted snapshot moves even though the catalog entry is gone.
	assert.True(t, s.MoveWishlistToCart("c-1"))
	assert.Empty(t, s.Wishlist())
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, "c-1", s.Cart()[0].ID)
}

func TestDeleteProductKeepsItsReviews(t *testing.T) {
	s, _ := newTestStore()

	s.AddReview("c-1", "Budi", 5, "Mantap!", "")
	s.DeleteProduct("c-1")

	_, found := s.ProductByID("c-1")
	assert.False(t, found)
	assert.NotEmpty(t, s.ReviewsFor("c-1"))
}

func TestStatsBlending(t *testing.T) {
	s, _ := newTestStore()

	p, ok := s.ProductByID("c-1")
	require.True(t, ok)

	s.AddReview("c-1", "Budi", 5, "Mantap!", "")

	rating, count, found := s.Stats("c-1")
	require.True(t, found)
	assert.Equal(t, p.Reviews+1, count)
	assert.InDelta(t, (5+p.Rating*float64(p.Reviews))/float64(p.Reviews+1), rating, 1e-9)

	// Seed fields are never written back.
	after, _ := s.ProductByID("c-1")
	assert.Equal(t, p.Rating, after.Rating)
	assert.Equal(t, p.Reviews, after.Reviews)
}

func TestViewRouter(t *testing.T) {
	s, _ := newTestStore()

	t.Run("plain mode", func(t *testing.T) {
		assert.Equal(t, "catalog", s.CurrentView().View)
	})

	t.Run("product selection overrides mode", func(t *testing.T) {
		s.SelectProduct("eb-1")
		assert.Equal(t, ViewProductDetail, s.CurrentView().View)
	})

	t.Run("unowned course id is inert", func(t *testing.T) {
		s.OpenCourse("c-1")
		assert.Equal(t, ViewProductDetail, s.CurrentView().View)
	})

	t.Run("owned course wins over product detail", func(t *testing.T) {
		s.RecordPurchase([]models.CartItem{{Product: models.Product{ID: "c-1", Modules: []string{"Modul A"}}, Quantity: 1}})
		assert.Equal(t, ViewCoursePlayer, s.CurrentView().View)
	})

	t.Run("admin mode wins outright", func(t *testing.T) {
		s.Navigate(ModeAdmin)
		s.SelectProduct("eb-1")
		s.OpenCourse("c-1")
		assert.Equal(t, "admin", s.CurrentView().View)
	})

	t.Run("navigation clears drill-downs", func(t *testing.T) {
		s.Navigate(ModeLibrary)
		view := s.CurrentView()
		assert.Equal(t, "library", view.View)
		assert.Empty(t, view.State.ProductID)
		assert.Empty(t, view.State.CourseID)
	})
}

func TestResyncWritesEveryKey(t *testing.T) {
	s, snaps := newTestStore()
	s.Resync()

	for _, key := range []string{KeyInventory, KeyReviews, KeyPurchases, KeyProgress, KeyAuth} {
		assert.Contains(t, snaps.data, key)
	}
}
