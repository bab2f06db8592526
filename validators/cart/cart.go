package cartValidator

import (
	"strings"

	"digimarket/middleware"

	"github.com/gofiber/fiber/v2"
)

// CartItem validator middleware, shared by add-to-cart, wishlist toggle
// and move-to-cart.
func CartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductId string `json:"productId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ProductId) == "" {
			errors["productId"] = "Product id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}

// UpdateQuantity validator middleware
func UpdateQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductId string `json:"productId"`
			Delta     int    `json:"delta"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ProductId) == "" {
			errors["productId"] = "Product id is required!"
		}

		if reqData.Delta == 0 {
			errors["delta"] = "Delta must be non-zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuantity", reqData)
		return c.Next()
	}
}
