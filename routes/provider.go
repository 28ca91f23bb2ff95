package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/controllers"
	"github.com/meinhoongagan/servicehub-backend/controllers/provider"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
)

// SetupProviderRoutes configures the provider-scoped routes
func SetupProviderRoutes(app *fiber.App) {
	grp := app.Group("/provider", middleware.Protected(), middleware.RequireRole(models.RoleProvider))

	grp.Get("/profile", provider.GetProfile)
	grp.Patch("/profile", provider.UpdateProfile)
	grp.Get("/dashboard", provider.GetDashboardStats)
	grp.Get("/earnings", provider.GetEarnings)

	grp.Post("/services", provider.CreateService)
	grp.Get("/services", provider.GetServices)
	grp.Put("/services/:serviceId", provider.UpdateService)
	grp.Delete("/services/:serviceId", provider.DeleteService)
	grp.Patch("/services/:serviceId/availability", provider.ToggleAvailability)
	grp.Post("/services/:serviceId/image", controllers.UploadServiceImage)

	grp.Get("/bookings", provider.GetBookings)
	grp.Patch("/bookings/:bookingId/accept", provider.AcceptBooking)
	grp.Patch("/bookings/:bookingId/reject", provider.RejectBooking)
	grp.Patch("/bookings/:bookingId/complete", provider.CompleteBooking)

	grp.Get("/reviews", provider.GetReviews)
	grp.Post("/reviews/:reviewId/respond", provider.RespondToReview)
}
