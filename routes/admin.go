package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/controllers/admin"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
)

// SetupAdminRoutes configures the moderation and platform routes
func SetupAdminRoutes(app *fiber.App) {
	grp := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	grp.Get("/dashboard", admin.GetDashboardStats)

	grp.Get("/users", admin.GetUsers)
	grp.Patch("/users/:userId/block", admin.ToggleBlockUser)
	grp.Delete("/users/:userId", admin.DeleteUser)
	grp.Patch("/users/:userId/reset-rejection", admin.ResetProviderRejection)

	grp.Get("/applications", admin.GetApplications)
	grp.Get("/applications/:id", admin.GetApplication)
	grp.Patch("/applications/:id/approve", admin.ApproveApplication)
	grp.Patch("/applications/:id/reject", admin.RejectApplication)

	grp.Get("/providers", admin.GetProviders)
	grp.Patch("/providers/:providerId/approve", admin.ApproveProvider)
	grp.Patch("/providers/:providerId/reject", admin.RejectProvider)
	grp.Delete("/providers/:providerId", admin.DeleteProvider)

	grp.Get("/bookings", admin.GetBookings)
	grp.Patch("/bookings/:bookingId/status", admin.OverrideBookingStatus)
	grp.Delete("/bookings/:bookingId", admin.DeleteBooking)

	grp.Get("/reviews", admin.GetReviews)
	grp.Patch("/reviews/:reviewId/visibility", admin.ToggleReviewVisibility)
	grp.Delete("/reviews/:reviewId", admin.DeleteReview)

	grp.Patch("/platform/fee", admin.UpdatePlatformFee)
	grp.Post("/categories", admin.AddCategory)
	grp.Delete("/categories/:name", admin.DeleteCategory)
	grp.Get("/payments", admin.GetPayments)
	grp.Get("/earnings", admin.GetPlatformEarnings)
}
