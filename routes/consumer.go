package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/controllers"
	"github.com/meinhoongagan/servicehub-backend/controllers/consumer"
	"github.com/meinhoongagan/servicehub-backend/middleware"
)

// SetupConsumerRoutes configures all end-user routes
func SetupConsumerRoutes(app *fiber.App) {
	user := app.Group("/user", middleware.Protected())

	user.Get("/profile", consumer.GetProfile)
	user.Patch("/profile", consumer.UpdateProfile)
	user.Post("/profile/image", controllers.UploadProfileImage)
	user.Get("/dashboard", consumer.GetDashboardStats)

	user.Post("/bookings", consumer.BookService)
	user.Get("/bookings", consumer.GetBookings)
	user.Get("/bookings/:bookingId", consumer.GetBookingDetails)
	user.Patch("/bookings/:bookingId/cancel", consumer.CancelBooking)

	user.Post("/reviews", consumer.SubmitReview)
	user.Get("/reviews", consumer.GetReviews)
	user.Get("/bookings/:bookingId/can-review", consumer.CanReviewBooking)

	user.Post("/provider-application", consumer.SubmitApplication)
	user.Get("/provider-application", consumer.GetApplicationStatus)
}
