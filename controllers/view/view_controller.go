package viewController

import (
	"digimarket/middleware"
	"digimarket/store"

	"github.com/gofiber/fiber/v2"
)

// GetView resolves the active view from the current mode and drill-down
// selections.
func GetView(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "View resolved!", store.App.CurrentView())
}

// Navigate switches the plain view mode. Both drill-down selections are
// cleared unconditionally.
func Navigate(c *fiber.Ctx) error {
	reqData := new(struct {
		View string `json:"view"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !store.ValidMode(reqData.View) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown view!", nil)
	}

	store.App.Navigate(store.ViewMode(reqData.View))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "View changed!", store.App.CurrentView())
}

// SelectProduct opens the product-detail drill-down.
func SelectProduct(c *fiber.Ctx) error {
	store.App.SelectProduct(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product selected!", store.App.CurrentView())
}

// ClearProduct closes the product-detail drill-down.
func ClearProduct(c *fiber.Ctx) error {
	store.App.ClearProduct()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selection cleared!", store.App.CurrentView())
}

// OpenCourse activates the course player. An id the user does not own
// is inert: the router falls through to the next view.
func OpenCourse(c *fiber.Ctx) error {
	store.App.OpenCourse(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course opened!", store.App.CurrentView())
}

// CloseCourse deactivates the course player.
func CloseCourse(c *fiber.Ctx) error {
	store.App.CloseCourse()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course closed!", store.App.CurrentView())
}
