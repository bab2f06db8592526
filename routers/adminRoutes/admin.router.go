package adminRoutes

import (
	adminController "digimarket/controllers/admin"
	"digimarket/middleware"
	adminValidator "digimarket/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Dashboard and stats
	adminGroup.Get("/stats", adminController.GetDashboardStats)

	// Product management
	adminGroup.Post("/products", adminValidator.UpsertProduct(), adminController.UpsertProduct)
	adminGroup.Delete("/products/:id", adminController.DeleteProduct)

	// Review moderation
	adminGroup.Put("/reviews/:id", adminValidator.UpdateReview(), adminController.UpdateReview)
	adminGroup.Delete("/reviews/:id", adminController.DeleteReview)

	// Product imagery
	adminGroup.Post("/images/generate", adminValidator.GenerateImage(), adminController.GenerateImage)
	adminGroup.Post("/images/upload", adminController.UploadImage)
}
