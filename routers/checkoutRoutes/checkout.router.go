package checkoutRoutes

import (
	checkoutController "digimarket/controllers/checkout"
	"digimarket/middleware"
	checkoutValidator "digimarket/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout")

	checkoutGroup.Get("/payment-methods", checkoutController.ListPaymentMethods)
	checkoutGroup.Post("/", checkoutValidator.CreateCheckout(), middleware.JWTMiddleware, checkoutController.CreateCheckout)
	checkoutGroup.Get("/:id", middleware.JWTMiddleware, checkoutController.GetCheckout)
}
