package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetUsers lists all users without credential hashes.
func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get users",
		})
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(utils.OK("Users retrieved", users))
}

// ToggleBlockUser flips a user's blocked flag. Admin accounts cannot be
// blocked.
func ToggleBlockUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	if user.Role == models.RoleAdmin {
		return utils.Fail(c, "Cannot block an admin account",
			fmt.Errorf("%w: target is an admin", utils.ErrForbidden))
	}

	user.IsBlocked = !user.IsBlocked
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	user.Password = ""
	return c.JSON(utils.OK("User block status updated", user))
}

// DeleteUser removes a user and all records referencing them. A provider's
// user also drops the provider profile and its services.
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	if user.Role == models.RoleAdmin {
		return utils.Fail(c, "Cannot delete an admin account",
			fmt.Errorf("%w: target is an admin", utils.ErrForbidden))
	}

	if user.Role == models.RoleProvider {
		var provider models.Provider
		if db.DB.Where("user_id = ?", user.ID).First(&provider).RowsAffected > 0 {
			db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Service{})
			db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Booking{})
			db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Payment{})
			db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Review{})
			db.DB.Delete(&provider)
		}
	}

	db.DB.Where("user_id = ?", user.ID).Delete(&models.Booking{})
	db.DB.Where("user_id = ?", user.ID).Delete(&models.Payment{})
	db.DB.Where("user_id = ?", user.ID).Delete(&models.Review{})
	db.DB.Where("user_id = ?", user.ID).Delete(&models.ProviderApplication{})

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.JSON(utils.OK("User deleted successfully", nil))
}
