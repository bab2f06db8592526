package store

import "digimarket/models"

// Reducers: pure transitions over the tracked collections. Each returns
// a fresh slice or map and never mutates its input, so superseded state
// stays valid for readers holding it.

func addToCart(cart []models.CartItem, p models.Product) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart)+1)
	found := false
	for _, it := range cart {
		if it.ID == p.ID {
			it.Quantity++
			found = true
		}
		next = append(next, it)
	}
	if !found {
		next = append(next, models.CartItem{Product: p, Quantity: 1})
	}
	return next
}

// updateQuantity clamps at 1; removal goes through removeFromCart.
func updateQuantity(cart []models.CartItem, id string, delta int) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		if it.ID == id {
			it.Quantity += delta
			if it.Quantity < 1 {
				it.Quantity = 1
			}
		}
		next = append(next, it)
	}
	return next
}

func removeFromCart(cart []models.CartItem, id string) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return next
}

func toggleWishlist(list []models.Product, p models.Product) []models.Product {
	for _, it := range list {
		if it.ID == p.ID {
			return removeProduct(list, p.ID)
		}
	}
	next := make([]models.Product, 0, len(list)+1)
	next = append(next, list...)
	return append(next, p)
}

// removeProduct drops the entry with the given id; no-op when absent.
// Shared by wishlist removal and catalog deletion.
func removeProduct(list []models.Product, id string) []models.Product {
	next := make([]models.Product, 0, len(list))
	for _, it := range list {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return next
}

func appendReview(reviews []models.Review, r models.Review) []models.Review {
	next := make([]models.Review, 0, len(reviews)+1)
	next = append(next, reviews...)
	return append(next, r)
}

func replaceReview(reviews []models.Review, updated models.Review) []models.Review {
	next := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ID == updated.ID {
			r = updated
		}
		next = append(next, r)
	}
	return next
}

func deleteReview(reviews []models.Review, id string) []models.Review {
	next := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ID != id {
			next = append(next, r)
		}
	}
	return next
}

// recordPurchase strips quantity and inserts each item whose id is not
// already owned. Idempotent union; purchases never shrink.
func recordPurchase(purchased []models.Product, items []models.CartItem) []models.Product {
	next := make([]models.Product, 0, len(purchased)+len(items))
	next = append(next, purchased...)
	for _, it := range items {
		owned := false
		for _, p := range next {
			if p.ID == it.ID {
				owned = true
				break
			}
		}
		if !owned {
			next = append(next, it.Product)
		}
	}
	return next
}

// toggleModule adds the module to the product's completed set if
// absent, removes it if present.
func toggleModule(progress map[string][]string, productID, module string) map[string][]string {
	next := make(map[string][]string, len(progress)+1)
	for k, v := range progress {
		next[k] = append([]string(nil), v...)
	}
	current := next[productID]
	for i, m := range current {
		if m == module {
			next[productID] = append(current[:i:i], current[i+1:]...)
			return next
		}
	}
	next[productID] = append(current, module)
	return next
}

// upsertProduct replaces an existing product in place, or prepends a
// new one so it shows first in the catalog.
func upsertProduct(products []models.Product, p models.Product) []models.Product {
	for i, existing := range products {
		if existing.ID == p.ID {
			next := make([]models.Product, len(products))
			copy(next, products)
			next[i] = p
			return next
		}
	}
	next := make([]models.Product, 0, len(products)+1)
	next = append(next, p)
	return append(next, products...)
}
