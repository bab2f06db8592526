package cartController

import (
	"digimarket/middleware"
	"digimarket/models"
	"digimarket/store"

	"github.com/gofiber/fiber/v2"
)

func cartPayload(items []models.CartItem) fiber.Map {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return fiber.Map{
		"items":    items,
		"count":    count,
		"subtotal": models.Subtotal(items),
	}
}

// GetCart returns the session cart with totals.
func GetCart(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched!", cartPayload(store.App.Cart()))
}

// AddToCart appends the product or increments its quantity.
func AddToCart(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCartItem").(*struct {
		ProductId string `json:"productId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !store.App.AddToCart(reqData.ProductId) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to cart!", cartPayload(store.App.Cart()))
}

// UpdateQuantity shifts an item's quantity by delta, clamped at 1.
func UpdateQuantity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuantity").(*struct {
		ProductId string `json:"productId"`
		Delta     int    `json:"delta"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store.App.UpdateQuantity(reqData.ProductId, reqData.Delta)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quantity updated!", cartPayload(store.App.Cart()))
}

// RemoveFromCart drops the item; no-op when absent.
func RemoveFromCart(c *fiber.Ctx) error {
	store.App.RemoveFromCart(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Removed from cart!", cartPayload(store.App.Cart()))
}

// GetWishlist returns the session wishlist.
func GetWishlist(c *fiber.Ctx) error {
	items := store.App.Wishlist()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched!", fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// ToggleWishlist adds the product to the wishlist, or removes it when
// already present.
func ToggleWishlist(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCartItem").(*struct {
		ProductId string `json:"productId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !store.App.ToggleWishlist(reqData.ProductId) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist updated!", store.App.Wishlist())
}

// RemoveFromWishlist drops the entry; no-op when absent.
func RemoveFromWishlist(c *fiber.Ctx) error {
	store.App.RemoveFromWishlist(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Removed from wishlist!", store.App.Wishlist())
}

// MoveToCart moves a wishlist entry into the cart as one logical action.
func MoveToCart(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCartItem").(*struct {
		ProductId string `json:"productId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !store.App.MoveWishlistToCart(reqData.ProductId) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Moved to cart!", fiber.Map{
		"cart":     cartPayload(store.App.Cart()),
		"wishlist": store.App.Wishlist(),
	})
}
