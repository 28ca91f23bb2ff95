package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetReviews lists all reviews with aggregate stats.
func GetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := db.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get reviews",
		})
	}

	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		distribution[r.Rating]++
		ratings = append(ratings, r.Rating)
	}
	avg, _ := models.AverageRating(ratings)

	return c.JSON(utils.OK("Reviews retrieved", fiber.Map{
		"reviews":        reviews,
		"total_reviews":  len(reviews),
		"average_rating": avg,
		"distribution":   distribution,
	}))
}

// ToggleReviewVisibility hides or shows a review and recomputes the
// aggregates that depend on it.
func ToggleReviewVisibility(c *fiber.Ctx) error {
	var review models.Review
	if err := db.DB.First(&review, "id = ?", c.Params("reviewId")).Error; err != nil {
		return utils.Fail(c, "Review not found", utils.ErrNotFound)
	}

	review.IsVisible = !review.IsVisible
	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update review",
		})
	}

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

	return c.JSON(utils.OK("Review visibility updated", review))
}

// DeleteReview removes a review and recomputes the dependent aggregates.
func DeleteReview(c *fiber.Ctx) error {
	var review models.Review
	if err := db.DB.First(&review, "id = ?", c.Params("reviewId")).Error; err != nil {
		return utils.Fail(c, "Review not found", utils.ErrNotFound)
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}

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

	return c.JSON(utils.OK("Review deleted successfully", nil))
}
