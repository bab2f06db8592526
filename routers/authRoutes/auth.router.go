package authRoutes

import (
	authController "digimarket/controllers/auth"
	"digimarket/middleware"
	authValidator "digimarket/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	authGroup.Get("/session", authController.GetSession)
}
