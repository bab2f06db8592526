package authController

import (
	"strings"
	"time"

	"digimarket/config"
	"digimarket/middleware"
	"digimarket/store"

	"github.com/gofiber/fiber/v2"
)

// Login simulates the auth backend: any well-formed credential pair is
// accepted after a short delay. The configured admin address gets the
// ADMIN role; everyone else is a USER.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Simulated backend latency
	time.Sleep(time.Duration(config.AppConfig.LoginDelayMs) * time.Millisecond)

	role := "USER"
	if reqData.Email == config.AppConfig.AdminUser {
		role = "ADMIN"
	}

	name := strings.TrimSpace(reqData.Name)
	if name == "" {
		name = strings.Split(reqData.Email, "@")[0]
	}

	token, err := middleware.GenerateJWT(name, reqData.Email, role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	store.App.SetLoggedIn(true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"name":  name,
		"email": reqData.Email,
		"role":  role,
	})
}

// Logout clears the persisted login flag.
func Logout(c *fiber.Ctx) error {
	store.App.SetLoggedIn(false)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out!", nil)
}

// GetSession reports the persisted login state.
func GetSession(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched!", fiber.Map{
		"loggedIn": store.App.IsLoggedIn(),
	})
}
