package adminController

import (
	"digimarket/middleware"
	"digimarket/models"
	"digimarket/store"
	"digimarket/utils"
	adminValidator "digimarket/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// UpsertProduct commits an admin product draft: replaces the product
// with the same id, or prepends a new one (fresh id assigned).
func UpsertProduct(c *fiber.Ctx) error {
	draft, ok := c.Locals("validatedProduct").(*adminValidator.ProductDraft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	product := models.Product{
		ID:          draft.ID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Rating:      draft.Rating,
		Reviews:     draft.Reviews,
		Category:    models.Category(draft.Category),
		Image:       draft.Image,
		Instructor:  draft.Instructor,
		Features:    draft.Features,
		Modules:     draft.Modules,
		FAQs:        draft.FAQs,
	}

	saved := store.App.UpsertProduct(product)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product saved!", saved)
}

// DeleteProduct removes a product from the catalog. Its reviews are
// intentionally kept and stay queryable by the old product id.
func DeleteProduct(c *fiber.Ctx) error {
	store.App.DeleteProduct(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted!", nil)
}

// UpdateReview replaces a review entirely with the supplied value.
func UpdateReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReviewUpdate").(*models.Review)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !store.App.UpdateReview(*reqData) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated!", reqData)
}

// DeleteReview drops a review; no-op when absent.
func DeleteReview(c *fiber.Ctx) error {
	store.App.DeleteReview(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted!", nil)
}

// GenerateImage asks the image service for product artwork. On failure
// the in-progress draft is untouched; the admin may retry.
func GenerateImage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedImagePrompt").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	url, err := utils.GenerateProductImage(reqData.Name, reqData.Description)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Image generation failed! Your draft is unchanged.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image generated!", fiber.Map{"image": url})
}

// UploadImage stores an admin-uploaded product image.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	url, err := utils.SaveUploadedImage(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded!", fiber.Map{"image": url})
}

// GetDashboardStats aggregates catalog counts for the admin panel.
func GetDashboardStats(c *fiber.Ctx) error {
	products := store.App.Products()

	perCategory := map[string]int{}
	for _, p := range products {
		perCategory[string(p.Category)]++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched!", fiber.Map{
		"productCount":  len(products),
		"reviewCount":   len(store.App.Reviews()),
		"purchaseCount": len(store.App.Purchased()),
		"perCategory":   perCategory,
	})
}
