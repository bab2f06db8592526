package libraryController

import (
	"log"
	"math"
	"time"

	"digimarket/middleware"
	"digimarket/store"
	"digimarket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// progressPercent rounds half up, e.g. 1 of 3 modules → 33.
func progressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ListPurchases returns everything the user owns, with course progress
// where a curriculum exists.
func ListPurchases(c *fiber.Ctx) error {
	purchased := store.App.Purchased()
	progress := store.App.Progress()

	type OwnedItem struct {
		Product          interface{} `json:"product"`
		CompletedModules []string    `json:"completedModules,omitempty"`
		ProgressPercent  int         `json:"progressPercent"`
	}

	items := make([]OwnedItem, 0, len(purchased))
	for _, p := range purchased {
		completed := progress[p.ID]
		items = append(items, OwnedItem{
			Product:          p,
			CompletedModules: completed,
			ProgressPercent:  progressPercent(len(completed), len(p.Modules)),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library fetched!", fiber.Map{
		"items": items,
		"total": len(items),
	})
}

// GetCourse returns a purchased course with its completion state. A
// course the user does not own renders nothing, never an error page.
func GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	course, owned := store.App.PurchasedByID(id)
	if !owned || !course.IsCourse() {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found in your library!", nil)
	}

	completed := store.App.CompletedModules(id)
	percent := progressPercent(len(completed), len(course.Modules))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched!", fiber.Map{
		"course":           course,
		"completedModules": completed,
		"progressPercent":  percent,
		"finished":         percent == 100,
	})
}

// ToggleModule flips one module's completed state. No purchase
// cross-check: progress may exist for products the user never bought.
func ToggleModule(c *fiber.Ctx) error {
	id := c.Params("id")

	reqData, ok := c.Locals("validatedModule").(*struct {
		Module string `json:"module"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	completed := store.App.ToggleModule(id, reqData.Module)

	total := 0
	if course, owned := store.App.PurchasedByID(id); owned {
		total = len(course.Modules)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", fiber.Map{
		"completedModules": completed,
		"progressPercent":  progressPercent(len(completed), total),
	})
}

// GetCertificate issues a completion certificate once every module of a
// purchased course is done.
func GetCertificate(c *fiber.Ctx) error {
	id := c.Params("id")
	name, _ := c.Locals("name").(string)
	email, _ := c.Locals("email").(string)

	course, owned := store.App.PurchasedByID(id)
	if !owned || !course.IsCourse() {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found in your library!", nil)
	}

	completed := store.App.CompletedModules(id)
	if progressPercent(len(completed), len(course.Modules)) != 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not completed yet!", nil)
	}

	go func() {
		if err := utils.SendCertificateEmail(email, name, course.Name); err != nil {
			log.Printf("Failed to send certificate email: %v", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued!", fiber.Map{
		"certificateId": uuid.NewString(),
		"courseName":    course.Name,
		"instructor":    course.Instructor,
		"recipient":     name,
		"issuedAt":      time.Now().UTC().Format(time.RFC3339),
	})
}

// GetDashboard aggregates ownership and learning stats.
func GetDashboard(c *fiber.Ctx) error {
	purchased := store.App.Purchased()
	progress := store.App.Progress()

	coursesOwned := 0
	modulesTotal := 0
	modulesCompleted := 0
	for _, p := range purchased {
		if !p.IsCourse() {
			continue
		}
		coursesOwned++
		modulesTotal += len(p.Modules)
		modulesCompleted += len(progress[p.ID])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
		"purchasedCount":   len(purchased),
		"wishlistCount":    len(store.App.Wishlist()),
		"coursesOwned":     coursesOwned,
		"modulesCompleted": modulesCompleted,
		"overallPercent":   progressPercent(modulesCompleted, modulesTotal),
	})
}
