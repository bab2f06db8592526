package adminValidator

import (
	"strings"

	"digimarket/middleware"
	"digimarket/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ProductDraft is the admin product form. An empty id means create.
type ProductDraft struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required,min=3"`
	Description string       `json:"description" validate:"required"`
	Price       int          `json:"price" validate:"gte=0"`
	Rating      float64      `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int          `json:"reviews" validate:"gte=0"`
	Category    string       `json:"category" validate:"required"`
	Image       string       `json:"image"`
	Instructor  string       `json:"instructor"`
	Features    []string     `json:"features"`
	Modules     []string     `json:"modules"`
	FAQs        []models.FAQ `json:"faqs"`
}

func validCategory(category string) bool {
	switch models.Category(category) {
	case models.CategoryCourse, models.CategoryEbook, models.CategorySystem,
		models.CategoryPrintable, models.CategoryToolkit, models.CategoryTemplate:
		return true
	}
	return false
}

// UpsertProduct validator middleware
func UpsertProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProductDraft)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name must be at least 3 characters long!"
				case "Description":
					errors["description"] = "Description is required!"
				case "Price":
					errors["price"] = "Price cannot be negative!"
				case "Rating":
					errors["rating"] = "Rating must be between 0 and 5!"
				case "Reviews":
					errors["reviews"] = "Review count cannot be negative!"
				case "Category":
					errors["category"] = "Category is required!"
				}
			}
		}

		// Category must be one of the known ones; the catch-all filter
		// value is not a real category.
		if reqData.Category != "" && !validCategory(reqData.Category) {
			errors["category"] = "Unknown category!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}

// UpdateReview validator middleware
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Review)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Route param wins over any id in the body.
		reqData.ID = c.Params("id")

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UserName) == "" {
			errors["userName"] = "Name is required!"
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if strings.TrimSpace(reqData.Comment) == "" {
			errors["comment"] = "Comment cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}

// GenerateImage validator middleware
func GenerateImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Product name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedImagePrompt", reqData)
		return c.Next()
	}
}
