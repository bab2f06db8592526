package reviewController

import (
	"strings"

	"digimarket/middleware"
	"digimarket/store"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview appends a user review for a product. Comment emptiness
// is rejected at the validator boundary; the store assigns id and date.
func SubmitReview(c *fiber.Ctx) error {
	productId := c.Params("id")

	reqData, ok := c.Locals("validatedReview").(*struct {
		UserName string `json:"userName"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
		VideoUrl string `json:"videoUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, found := store.App.ProductByID(productId); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	review := store.App.AddReview(productId, reqData.UserName, reqData.Rating, strings.TrimSpace(reqData.Comment), reqData.VideoUrl)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// ListProductReviews returns all reviews for a product id. No product
// existence check: reviews stay queryable after their product is
// deleted.
func ListProductReviews(c *fiber.Ctx) error {
	productId := c.Params("id")
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", store.App.ReviewsFor(productId))
}
