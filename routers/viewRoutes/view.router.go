package viewRoutes

import (
	viewController "digimarket/controllers/view"

	"github.com/gofiber/fiber/v2"
)

func SetupViewRoutes(app *fiber.App) {
	viewGroup := app.Group("/view")

	viewGroup.Get("/", viewController.GetView)
	viewGroup.Post("/navigate", viewController.Navigate)
	viewGroup.Post("/products/:id/select", viewController.SelectProduct)
	viewGroup.Post("/products/clear", viewController.ClearProduct)
	viewGroup.Post("/courses/:id/open", viewController.OpenCourse)
	viewGroup.Post("/courses/close", viewController.CloseCourse)
}
