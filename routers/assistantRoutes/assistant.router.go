package assistantRoutes

import (
	assistantController "digimarket/controllers/assistant"
	assistantValidator "digimarket/validators/assistant"

	"github.com/gofiber/fiber/v2"
)

func SetupAssistantRoutes(app *fiber.App) {
	assistantGroup := app.Group("/assistant")

	assistantGroup.Post("/recommend", assistantValidator.Recommend(), assistantController.Recommend)
}
