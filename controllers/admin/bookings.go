package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetBookings lists every booking, optionally filtered by status.
func GetBookings(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Booking{})
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

// OverrideBookingStatus is the administrative escape hatch: it sets any
// parseable status without consulting the transition table. The normal
// lifecycle endpoints go through UpdateStatus and never allow this.
func OverrideBookingStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status string `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	status, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		return utils.Fail(c, "Invalid booking status", err)
	}

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	if err := booking.ForceStatus(db.DB, status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update booking status",
		})
	}

	return c.JSON(utils.OK("Booking status updated successfully", booking))
}

// DeleteBooking removes a booking with its payment and review.
func DeleteBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := db.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	db.DB.Where("booking_id = ?", booking.ID).Delete(&models.Payment{})

	var review models.Review
	if db.DB.Where("booking_id = ?", booking.ID).First(&review).RowsAffected > 0 {
		db.DB.Delete(&review)
		if err := models.RecalculateServiceRating(db.DB, review.ServiceID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update service rating",
			})
		}
		if err := models.RecalculateProviderRating(db.DB, review.ProviderID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update provider rating",
			})
		}
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete booking",
		})
	}

	return c.JSON(utils.OK("Booking deleted successfully", nil))
}
