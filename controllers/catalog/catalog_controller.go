package catalogController

import (
	"digimarket/middleware"
	"digimarket/models"
	"digimarket/store"

	"github.com/gofiber/fiber/v2"
)

// ProductView is a catalog entry enriched with its blended rating.
type ProductView struct {
	models.Product
	BlendedRating float64 `json:"blendedRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// ListProducts returns the filtered, sorted catalog view. The whole
// view is recomputed on every request.
func ListProducts(c *fiber.Ctx) error {
	category := c.Query("category", models.CategoryAll)
	search := c.Query("search")
	sortMode := c.Query("sort", string(store.SortFeatured))

	if !store.ValidSortMode(sortMode) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sort mode!", nil)
	}

	products := store.App.Catalog(category, search, store.SortMode(sortMode))
	reviews := store.App.Reviews()

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		rating, count := store.ComputeStats(p.ID, p.Rating, p.Reviews, reviews)
		views = append(views, ProductView{Product: p, BlendedRating: rating, ReviewCount: count})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched!", fiber.Map{
		"products": views,
		"total":    len(views),
	})
}

// GetProductDetails returns one product with its reviews and blended stats.
func GetProductDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	product, ok := store.App.ProductByID(id)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	rating, count, _ := store.App.Stats(id)

	wishlisted := false
	for _, w := range store.App.Wishlist() {
		if w.ID == id {
			wishlisted = true
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched!", fiber.Map{
		"product":       product,
		"reviews":       store.App.ReviewsFor(id),
		"averageRating": rating,
		"totalReviews":  count,
		"isWishlisted":  wishlisted,
	})
}

// ListCategories returns the filter choices, sentinel first.
func ListCategories(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", models.Categories)
}
