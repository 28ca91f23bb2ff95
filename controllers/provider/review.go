package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetReviews lists reviews for the caller's services.
func GetReviews(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var reviews []models.Review
	if err := db.DB.Where("provider_id = ?", provider.ID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get reviews",
		})
	}

	return c.JSON(utils.OK("Reviews retrieved", reviews))
}

// RespondToReview attaches a single public response to one of the caller's
// reviews.
func RespondToReview(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	type ResponseInput struct {
		Response string `json:"response" validate:"required"`
	}
	input := new(ResponseInput)
	if err := c.BodyParser(input); err != nil || input.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "response is required",
		})
	}

	var review models.Review
	if db.DB.Where("id = ? AND provider_id = ?", c.Params("reviewId"), provider.ID).
		First(&review).RowsAffected == 0 {
		return utils.Fail(c, "Review not found", utils.ErrNotFound)
	}

	now := time.Now()
	review.ProviderResponse = input.Response
	review.RespondedAt = &now
	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save response",
		})
	}

	return c.JSON(utils.OK("Response saved", review))
}
