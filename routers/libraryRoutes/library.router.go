package libraryRoutes

import (
	libraryController "digimarket/controllers/library"
	"digimarket/middleware"
	libraryValidator "digimarket/validators/library"

	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App) {
	libraryGroup := app.Group("/library")

	libraryGroup.Get("/", middleware.JWTMiddleware, libraryController.ListPurchases)
	libraryGroup.Get("/dashboard", middleware.JWTMiddleware, libraryController.GetDashboard)
	libraryGroup.Get("/courses/:id", middleware.JWTMiddleware, libraryController.GetCourse)
	libraryGroup.Post("/courses/:id/progress", libraryValidator.ToggleModule(), middleware.JWTMiddleware, libraryController.ToggleModule)
	libraryGroup.Get("/courses/:id/certificate", middleware.JWTMiddleware, libraryController.GetCertificate)
}
