package consumer

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// BookingView resolves the foreign keys of a booking for display. Dangling
// references stay nil instead of failing the request.
type BookingView struct {
	models.Booking
	Service  *models.Service  `json:"service,omitempty"`
	Provider *models.Provider `json:"provider,omitempty"`
}

func hydrateBookings(bookings []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{Booking: b}
		var service models.Service
		if db.DB.First(&service, "id = ?", b.ServiceID).RowsAffected > 0 {
			view.Service = &service
		}
		var provider models.Provider
		if db.DB.First(&provider, "id = ?", b.ProviderID).RowsAffected > 0 {
			view.Provider = &provider
		}
		views = append(views, view)
	}
	return views
}

type BookServiceInput struct {
	ServiceID   string `json:"service_id" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required"`
	BookingTime string `json:"booking_time" validate:"required"`
	UserAddress string `json:"user_address" validate:"required"`
	Notes       string `json:"notes"`
}

// BookService creates a PENDING booking for an available service and
// computes the platform fee from the stored fee percentage.
func BookService(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	input := new(BookServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, "id = ?", input.ServiceID).Error; err != nil {
		return utils.Fail(c, "Service not found", utils.ErrNotFound)
	}

	if !service.IsAvailable {
		return utils.Fail(c, "Service is not available",
			fmt.Errorf("%w: service is unavailable", utils.ErrValidation))
	}

	config, err := models.GetPlatformConfig(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load platform config",
		})
	}

	serviceAmount, platformFee, totalAmount := models.ComputeFees(service.Price, config.FeePercentage)

	booking := models.Booking{
		UserID:        userID,
		ServiceID:     service.ID,
		ProviderID:    service.ProviderID,
		BookingDate:   input.BookingDate,
		BookingTime:   input.BookingTime,
		UserAddress:   input.UserAddress,
		Notes:         input.Notes,
		Status:        models.BookingPending,
		ServiceAmount: serviceAmount,
		PlatformFee:   platformFee,
		TotalAmount:   totalAmount,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	db.DB.Model(&service).UpdateColumn("total_bookings", service.TotalBookings+1)

	var user models.User
	if db.DB.First(&user, "id = ?", userID).RowsAffected > 0 {
		utils.SendEmailAsync(user.Email,
			"Booking received: "+service.Name,
			fmt.Sprintf("<p>Hi %s,</p><p>Your booking for <strong>%s</strong> on %s at %s is pending confirmation.</p><p>Total amount: %.2f (includes platform fee %.2f).</p>",
				user.Name, service.Name, booking.BookingDate, booking.BookingTime, booking.TotalAmount, booking.PlatformFee))
	}

	return c.Status(fiber.StatusCreated).JSON(
		utils.OK("Booking created successfully. Please proceed with payment.", booking))
}

// GetBookings lists the caller's bookings, newest first.
func GetBookings(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var bookings []models.Booking
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bookings",
		})
	}

	return c.JSON(utils.OK("Bookings retrieved", hydrateBookings(bookings)))
}

// GetBookingDetails returns one of the caller's bookings.
func GetBookingDetails(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var booking models.Booking
	if db.DB.Where("id = ? AND user_id = ?", c.Params("bookingId"), userID).First(&booking).RowsAffected == 0 {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	views := hydrateBookings([]models.Booking{booking})
	return c.JSON(utils.OK("Booking retrieved", views[0]))
}

// CancelBooking moves a non-terminal booking to CANCELLED. If a completed
// payment exists it is marked REFUNDED locally; the gateway refund is a
// separate, explicit call on the payment surface.
func CancelBooking(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var booking models.Booking
	if db.DB.Where("id = ? AND user_id = ?", c.Params("bookingId"), userID).First(&booking).RowsAffected == 0 {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	if err := booking.UpdateStatus(db.DB, models.BookingCancelled); err != nil {
		return utils.Fail(c, "Cannot cancel this booking", err)
	}

	var payment models.Payment
	if db.DB.Where("booking_id = ?", booking.ID).First(&payment).RowsAffected > 0 {
		if models.RefundLocallyOnCancel(&payment) {
			db.DB.Save(&payment)
		}
	}

	return c.JSON(utils.OK("Booking cancelled", booking))
}
