package assistantController

import (
	"digimarket/middleware"
	"digimarket/store"
	"digimarket/utils"

	"github.com/gofiber/fiber/v2"
)

// Recommend asks the remote model for product advice. The reply is
// split on product markers so the client can render product cards
// inline; a marker whose id left the catalog becomes a placeholder.
func Recommend(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPrompt").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	text, err := utils.GetRecommendation(reqData.Message, store.App.Products())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false,
			"Asisten Belajar sedang istirahat sejenak. Silakan coba lagi nanti!", nil)
	}

	segments := utils.SplitRecommendation(text, store.App.ProductByID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendation ready!", fiber.Map{
		"reply":    text,
		"segments": segments,
	})
}
