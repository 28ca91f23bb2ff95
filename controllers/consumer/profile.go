package consumer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetProfile returns the caller's profile.
func GetProfile(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	user.Password = ""
	return c.JSON(utils.OK("Profile retrieved", user))
}

// UpdateProfile updates the caller's name, phone, and address. Role, flags,
// and credentials are not reachable from here.
func UpdateProfile(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	type ProfileInput struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	user.Password = ""
	return c.JSON(utils.OK("Profile updated", user))
}

// GetDashboardStats summarizes the caller's booking activity.
func GetDashboardStats(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var activeBookings, completedBookings int64
	db.DB.Model(&models.Booking{}).
		Where("user_id = ? AND status IN ?", userID,
			[]models.BookingStatus{models.BookingPending, models.BookingAccepted}).
		Count(&activeBookings)
	db.DB.Model(&models.Booking{}).
		Where("user_id = ? AND status = ?", userID, models.BookingCompleted).
		Count(&completedBookings)

	var totalSpent float64
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("user_id = ? AND status = ?", userID, models.BookingCompleted).
		Scan(&totalSpent)

	var recent []models.Booking
	db.DB.Where("user_id = ?", userID).Order("created_at DESC").Limit(5).Find(&recent)

	return c.JSON(utils.OK("Dashboard stats retrieved", fiber.Map{
		"active_bookings":    activeBookings,
		"completed_bookings": completedBookings,
		"total_spent":        utils.Round2(totalSpent),
		"recent_bookings":    hydrateBookings(recent),
	}))
}
