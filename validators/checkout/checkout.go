package checkoutValidator

import (
	"strings"

	"digimarket/middleware"
	"digimarket/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckout validator middleware
func CreateCheckout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductId     string `json:"productId"`
			FromCart      bool   `json:"fromCart"`
			PaymentMethod string `json:"paymentMethod"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Buy-now needs a target product; cart checkout does not.
		if !reqData.FromCart && strings.TrimSpace(reqData.ProductId) == "" {
			errors["productId"] = "Product id is required for direct purchase!"
		}

		if !models.ValidPaymentMethod(reqData.PaymentMethod) {
			errors["paymentMethod"] = "Unknown payment method!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
