package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetProfile returns the caller's business profile.
func GetProfile(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	return c.JSON(utils.OK("Provider profile retrieved", provider))
}

// UpdateProfile edits the business fields of the caller's profile. Status,
// rating, and earnings are not client-writable.
func UpdateProfile(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	type ProfileInput struct {
		BusinessName   string `json:"business_name"`
		Description    string `json:"description"`
		Category       string `json:"category"`
		Experience     string `json:"experience"`
		Certifications string `json:"certifications"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updates := map[string]interface{}{}
	if input.BusinessName != "" {
		updates["business_name"] = input.BusinessName
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Category != "" {
		updates["category"] = input.Category
	}
	if input.Experience != "" {
		updates["experience"] = input.Experience
	}
	if input.Certifications != "" {
		updates["certifications"] = input.Certifications
	}

	if len(updates) > 0 {
		if err := db.DB.Model(provider).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	return c.JSON(utils.OK("Provider profile updated", provider))
}

// GetDashboardStats summarizes the provider's services, bookings, earnings,
// and rating in one response.
func GetDashboardStats(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var totalServices, activeBookings, completedBookings, pendingRequests int64
	db.DB.Model(&models.Service{}).Where("provider_id = ?", provider.ID).Count(&totalServices)
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status IN ?", provider.ID,
			[]models.BookingStatus{models.BookingPending, models.BookingAccepted}).
		Count(&activeBookings)
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.BookingCompleted).
		Count(&completedBookings)
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.BookingPending).
		Count(&pendingRequests)

	var totalEarnings float64
	db.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(provider_amount), 0)").
		Where("provider_id = ? AND status = ?", provider.ID, models.PaymentCompleted).
		Scan(&totalEarnings)

	var recentBookings []models.Booking
	db.DB.Where("provider_id = ?", provider.ID).
		Order("created_at DESC").Limit(5).Find(&recentBookings)

	return c.JSON(utils.OK("Dashboard stats retrieved", fiber.Map{
		"total_services":     totalServices,
		"active_bookings":    activeBookings,
		"completed_bookings": completedBookings,
		"pending_requests":   pendingRequests,
		"total_earnings":     utils.Round2(totalEarnings),
		"rating":             provider.Rating,
		"recent_bookings":    recentBookings,
		"last_updated":       time.Now(),
	}))
}
