package catalogRoutes

import (
	catalogController "digimarket/controllers/catalog"
	reviewController "digimarket/controllers/reviews"
	reviewValidator "digimarket/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	// Specific routes MUST come before /:id
	catalogGroup.Get("/products", catalogController.ListProducts)
	catalogGroup.Get("/categories", catalogController.ListCategories)

	catalogGroup.Get("/products/:id", catalogController.GetProductDetails)
	catalogGroup.Get("/products/:id/reviews", reviewController.ListProductReviews)
	catalogGroup.Post("/products/:id/reviews", reviewValidator.SubmitReview(), reviewController.SubmitReview)
}
