package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// providerBooking loads one of the caller's bookings by id.
func providerBooking(c *fiber.Ctx, provider *models.Provider) (*models.Booking, error) {
	var booking models.Booking
	if db.DB.Where("id = ? AND provider_id = ?", c.Params("bookingId"), provider.ID).
		First(&booking).RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return &booking, nil
}

// GetBookings lists bookings for the caller's services, newest first.
func GetBookings(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	query := db.DB.Where("provider_id = ?", provider.ID)
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseBookingStatus(status)
		if err != nil {
			return utils.Fail(c, "Invalid status filter", err)
		}
		query = query.Where("status = ?", parsed)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bookings",
		})
	}

	return c.JSON(utils.OK("Bookings retrieved", bookings))
}

// AcceptBooking confirms a pending booking.
func AcceptBooking(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	booking, err := providerBooking(c, provider)
	if err != nil {
		return utils.Fail(c, "Booking not found", err)
	}

	if err := booking.UpdateStatus(db.DB, models.BookingAccepted); err != nil {
		return utils.Fail(c, "Cannot accept this booking", err)
	}

	return c.JSON(utils.OK("Booking accepted", booking))
}

// RejectBooking declines a pending booking.
func RejectBooking(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	booking, err := providerBooking(c, provider)
	if err != nil {
		return utils.Fail(c, "Booking not found", err)
	}

	if err := booking.UpdateStatus(db.DB, models.BookingRejected); err != nil {
		return utils.Fail(c, "Cannot reject this booking", err)
	}

	return c.JSON(utils.OK("Booking rejected", booking))
}

// CompleteBooking closes out an accepted booking and credits the provider's
// earnings with the service amount (the platform keeps the fee).
func CompleteBooking(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	booking, err := providerBooking(c, provider)
	if err != nil {
		return utils.Fail(c, "Booking not found", err)
	}

	if err := booking.UpdateStatus(db.DB, models.BookingCompleted); err != nil {
		return utils.Fail(c, "Cannot complete this booking", err)
	}

	provider.TotalEarnings = utils.Round2(provider.TotalEarnings + booking.ServiceAmount)
	db.DB.Save(provider)

	return c.JSON(utils.OK("Booking completed", booking))
}

// GetEarnings summarizes completed payments for the caller.
func GetEarnings(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var payments []models.Payment
	db.DB.Where("provider_id = ? AND status = ?", provider.ID, models.PaymentCompleted).
		Order("created_at DESC").Find(&payments)

	var totalEarnings float64
	for _, p := range payments {
		totalEarnings += p.ProviderAmount
	}

	var totalBookings int64
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.BookingCompleted).
		Count(&totalBookings)

	recent := payments
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return c.JSON(utils.OK("Earnings retrieved", fiber.Map{
		"total_earnings":  utils.Round2(totalEarnings),
		"total_bookings":  totalBookings,
		"recent_payments": recent,
	}))
}
