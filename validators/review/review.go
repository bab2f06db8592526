package reviewValidator

import (
	"strings"

	"digimarket/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview validator middleware
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserName string `json:"userName"`
			Rating   int    `json:"rating"`
			Comment  string `json:"comment"`
			VideoUrl string `json:"videoUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.UserName) == "" {
			errors["userName"] = "Name is required!"
		}

		// Validate Rating
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		// Validate Comment
		if strings.TrimSpace(reqData.Comment) == "" {
			errors["comment"] = "Comment cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
