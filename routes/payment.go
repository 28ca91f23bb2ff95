package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/controllers"
	"github.com/meinhoongagan/servicehub-backend/middleware"
)

// SetupPaymentRoutes configures the payment processing routes
func SetupPaymentRoutes(app *fiber.App) {
	payments := app.Group("/payments", middleware.Protected())

	payments.Post("/create-order", controllers.CreateOrder)
	payments.Post("/verify", controllers.VerifyPayment)
	payments.Post("/:paymentId/refund", controllers.InitiateRefund)
	payments.Get("/booking/:bookingId", controllers.GetPaymentByBooking)
	payments.Get("/:paymentId", controllers.GetPaymentDetails)
}
