package store

import (
	"log"
	"sync"
	"time"

	"digimarket/models"
)

// Store is the application state container. All five persisted
// collections plus the session-only cart, wishlist and view state live
// here. Every mutation goes through a reducer under the store mutex, so
// actions within a collection apply strictly in the order they arrive;
// each successful mutation mirrors the whole collection back to its
// snapshot key.
type Store struct {
	mu        sync.Mutex
	snapshots Snapshots
	ids       IDGenerator
	now       func() time.Time

	products  []models.Product
	reviews   []models.Review
	cart      []models.CartItem
	wishlist  []models.Product
	purchased []models.Product
	progress  map[string][]string
	loggedIn  bool

	view ViewState
}

// App is the global store instance.
var App *Store

// New builds a store seeded with the built-in catalog and reviews.
func New(snapshots Snapshots, ids IDGenerator) *Store {
	return &Store{
		snapshots: snapshots,
		ids:       ids,
		now:       time.Now,
		products:  SeedProducts(),
		reviews:   SeedReviews(),
		progress:  map[string][]string{},
		view:      ViewState{Mode: ModeCatalog},
	}
}

// Init connects the snapshot database, builds the global store and
// rehydrates it from storage.
func Init() {
	snaps, err := ConnectSnapshots()
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	App = New(snaps, UUIDGenerator{})
	App.Rehydrate()
}

// Rehydrate loads each snapshot key independently. A missing or corrupt
// key keeps its seed value and never blocks the other keys.
func (s *Store) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	if s.loadKey(KeyInventory, &products) {
		s.products = products
	}
	var reviews []models.Review
	if s.loadKey(KeyReviews, &reviews) {
		s.reviews = reviews
	}
	var purchased []models.Product
	if s.loadKey(KeyPurchases, &purchased) {
		s.purchased = purchased
	}
	progress := map[string][]string{}
	if s.loadKey(KeyProgress, &progress) {
		s.progress = progress
	}
	var loggedIn bool
	if s.loadKey(KeyAuth, &loggedIn) {
		s.loggedIn = loggedIn
	}
}

func (s *Store) loadKey(key string, v any) bool {
	found, err := s.snapshots.Load(key, v)
	if err != nil {
		log.Printf("store: snapshot %s unreadable, keeping seed data: %v", key, err)
		return false
	}
	return found
}

// persist mirrors one collection to its key. Write failures are logged,
// not retried; in-memory state is already updated.
func (s *Store) persist(key string, v any) {
	if err := s.snapshots.Save(key, v); err != nil {
		log.Printf("store: failed to persist %s: %v", key, err)
	}
}

// Resync re-saves every tracked collection. Used by the periodic
// snapshot scheduler as a safety net after write failures.
func (s *Store) Resync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(KeyInventory, s.products)
	s.persist(KeyReviews, s.reviews)
	s.persist(KeyPurchases, s.purchased)
	s.persist(KeyProgress, s.progress)
	s.persist(KeyAuth, s.loggedIn)
}

// ---- Catalog reads ----

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Catalog returns the filtered, sorted catalog view. Recomputed in full
// on every call.
func (s *Store) Catalog(category, query string, mode SortMode) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveView(s.products, category, query, mode, s.reviews)
}

// Stats returns the blended rating and review count for a product.
func (s *Store) Stats(productID string) (float64, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			rating, count := ComputeStats(p.ID, p.Rating, p.Reviews, s.reviews)
			return rating, count, true
		}
	}
	return 0, 0, false
}

// ---- Reviews ----

func (s *Store) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Review(nil), s.reviews...)
}

func (s *Store) ReviewsFor(productID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// AddReview assigns a fresh id and timestamp and appends the review.
// Comment validation happens at the boundary, not here.
func (s *Store) AddReview(productID, userName string, rating int, comment, videoURL string) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	review := models.Review{
		ID:        s.ids.NewID(),
		ProductID: productID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		Date:      s.now().UTC().Format(time.RFC3339),
		VideoURL:  videoURL,
	}
	s.reviews = appendReview(s.reviews, review)
	s.persist(KeyReviews, s.reviews)
	return review
}

// UpdateReview replaces the review with the same id entirely. Returns
// false when no such review exists.
func (s *Store) UpdateReview(updated models.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists := false
	for _, r := range s.reviews {
		if r.ID == updated.ID {
			exists = true
			break
		}
	}
	if !exists {
		return false
	}
	s.reviews = replaceReview(s.reviews, updated)
	s.persist(KeyReviews, s.reviews)
	return true
}

func (s *Store) DeleteReview(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = deleteReview(s.reviews, id)
	s.persist(KeyReviews, s.reviews)
}

// ---- Cart & wishlist (session-only) ----

func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.cart...)
}

// AddToCart resolves the product and increments or appends its cart
// entry. Returns false when the product id is unknown.
func (s *Store) AddToCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addToCartLocked(productID)
}

func (s *Store) addToCartLocked(productID string) bool {
	for _, p := range s.products {
		if p.ID == productID {
			s.cart = addToCart(s.cart, p)
			return true
		}
	}
	return false
}

func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = updateQuantity(s.cart, id, delta)
}

func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = removeFromCart(s.cart, id)
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Store) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.wishlist...)
}

// ToggleWishlist adds or removes the product. Returns false when the
// product id is unknown.
func (s *Store) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			s.wishlist = toggleWishlist(s.wishlist, p)
			return true
		}
	}
	return false
}

func (s *Store) RemoveFromWishlist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = removeProduct(s.wishlist, id)
}

// MoveWishlistToCart applies add-to-cart then wishlist removal as one
// logical action under a single lock acquisition. The wishlisted
// snapshot is what moves, so the entry stays movable even after the
// product leaves the catalog.
func (s *Store) MoveWishlistToCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			s.cart = addToCart(s.cart, p)
			s.wishlist = removeProduct(s.wishlist, productID)
			return true
		}
	}
	if !s.addToCartLocked(productID) {
		return false
	}
	s.wishlist = removeProduct(s.wishlist, productID)
	return true
}

// ---- Purchases & course progress ----

func (s *Store) Purchased() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.purchased...)
}

func (s *Store) PurchasedByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.purchased {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) RecordPurchase(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchased = recordPurchase(s.purchased, items)
	s.persist(KeyPurchases, s.purchased)
}

func (s *Store) CompletedModules(productID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.progress[productID]...)
}

func (s *Store) Progress() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]string, len(s.progress))
	for k, v := range s.progress {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// ToggleModule flips one module in the product's completed set and
// returns the new set. No purchase cross-check is performed here.
func (s *Store) ToggleModule(productID, module string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = toggleModule(s.progress, productID, module)
	s.persist(KeyProgress, s.progress)
	return append([]string(nil), s.progress[productID]...)
}

// ---- Admin catalog mutations ----

// UpsertProduct replaces an existing product or prepends a new one,
// assigning a fresh id when none is supplied. Deleting a product does
// not cascade to its reviews.
func (s *Store) UpsertProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.ids.NewID()
	}
	s.products = upsertProduct(s.products, p)
	s.persist(KeyInventory, s.products)
	return p
}

func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = removeProduct(s.products, id)
	s.persist(KeyInventory, s.products)
}

// ---- Auth flag ----

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *Store) SetLoggedIn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = v
	s.persist(KeyAuth, s.loggedIn)
}

// ---- View state ----

// ResolvedView is the view router output handed to the presentation
// layer.
type ResolvedView struct {
	View  string    `json:"view"`
	State ViewState `json:"state"`
}

func (s *Store) CurrentView() ResolvedView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ResolvedView{View: resolveView(s.view, s.purchased), State: s.view}
}

// Navigate switches the plain view mode and unconditionally clears both
// drill-down selections.
func (s *Store) Navigate(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewState{Mode: mode}
}

func (s *Store) SelectProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ProductID = id
}

func (s *Store) ClearProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ProductID = ""
}

func (s *Store) OpenCourse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CourseID = id
}

func (s *Store) CloseCourse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CourseID = ""
}
