package consumer

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

type SubmitReviewInput struct {
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,min=10"`
}

// SubmitReview adds a review for a completed booking owned by the caller
// and recomputes the service and provider aggregates.
func SubmitReview(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	input := new(SubmitReviewInput)
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

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ?", input.BookingID).Error; err != nil {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	var existing models.Review
	hasExisting := db.DB.Where("booking_id = ?", booking.ID).First(&existing).RowsAffected > 0

	if err := models.CanReview(&booking, userID, hasExisting); err != nil {
		return utils.Fail(c, "Cannot review this booking", err)
	}

	review := models.Review{
		UserID:     userID,
		ServiceID:  booking.ServiceID,
		ProviderID: booking.ProviderID,
		BookingID:  booking.ID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		IsVisible:  true,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	if err := models.RecalculateServiceRating(db.DB, booking.ServiceID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service rating",
		})
	}
	if err := models.RecalculateProviderRating(db.DB, booking.ProviderID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update provider rating",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(utils.OK("Review submitted successfully", review))
}

// CanReviewBooking is a probe the client calls before showing the review
// form.
func CanReviewBooking(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var booking models.Booking
	if db.DB.Where("id = ? AND user_id = ?", c.Params("bookingId"), userID).First(&booking).RowsAffected == 0 {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	if booking.Status != models.BookingCompleted {
		return c.JSON(utils.OK("Booking status check", fiber.Map{
			"can_review": false,
			"reason":     "Booking must be completed before reviewing",
		}))
	}

	var existing models.Review
	if db.DB.Where("booking_id = ?", booking.ID).First(&existing).RowsAffected > 0 {
		return c.JSON(utils.OK("Review check", fiber.Map{
			"can_review": false,
			"reason":     "You have already reviewed this booking",
			"review":     existing,
		}))
	}

	return c.JSON(utils.OK("Can review", fiber.Map{"can_review": true}))
}

// GetReviews lists the caller's reviews.
func GetReviews(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var reviews []models.Review
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get reviews",
		})
	}

	return c.JSON(utils.OK("Reviews retrieved", reviews))
}
