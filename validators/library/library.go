package libraryValidator

import (
	"strings"

	"digimarket/middleware"

	"github.com/gofiber/fiber/v2"
)

// ToggleModule validator middleware
func ToggleModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Module string `json:"module"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Module) == "" {
			errors["module"] = "Module title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
