package cartRoutes

import (
	cartController "digimarket/controllers/cart"
	cartValidator "digimarket/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart")

	cartGroup.Get("/", cartController.GetCart)
	cartGroup.Post("/add", cartValidator.CartItem(), cartController.AddToCart)
	cartGroup.Patch("/quantity", cartValidator.UpdateQuantity(), cartController.UpdateQuantity)
	cartGroup.Delete("/:id", cartController.RemoveFromCart)

	wishlistGroup := app.Group("/wishlist")

	wishlistGroup.Get("/", cartController.GetWishlist)
	wishlistGroup.Post("/toggle", cartValidator.CartItem(), cartController.ToggleWishlist)
	wishlistGroup.Post("/move-to-cart", cartValidator.CartItem(), cartController.MoveToCart)
	wishlistGroup.Delete("/:id", cartController.RemoveFromWishlist)
}
