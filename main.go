package main

import (
	"log"

	"digimarket/config"
	"digimarket/routers/adminRoutes"
	"digimarket/routers/assistantRoutes"
	"digimarket/routers/authRoutes"
	"digimarket/routers/cartRoutes"
	"digimarket/routers/catalogRoutes"
	"digimarket/routers/checkoutRoutes"
	"digimarket/routers/libraryRoutes"
	"digimarket/routers/viewRoutes"
	"digimarket/store"
	"digimarket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	store.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	libraryRoutes.SetupLibraryRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	assistantRoutes.SetupAssistantRoutes(app)
	viewRoutes.SetupViewRoutes(app)

	utils.InitializeSnapshotScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
