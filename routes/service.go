package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/controllers"
)

// SetupServiceRoutes configures the public catalog routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/featured", controllers.GetFeaturedServices)
	services.Get("/:id", controllers.GetService)

	app.Get("/categories", controllers.GetCategories)
}
