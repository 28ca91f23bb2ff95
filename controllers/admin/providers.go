package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetProviders lists all provider profiles.
func GetProviders(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Provider{})
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseProviderStatus(status)
		if err != nil {
			return utils.Fail(c, "Invalid status filter", err)
		}
		query = query.Where("status = ?", parsed)
	}

	var providers []models.Provider
	if err := query.Order("created_at DESC").Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get providers",
		})
	}

	return c.JSON(utils.OK("Providers retrieved", providers))
}

// ApproveProvider re-moderates an existing provider profile: it only flips
// the provider's own status. The originating application and user role are
// not touched; the application workflow owns those.
func ApproveProvider(c *fiber.Ctx) error {
	var provider models.Provider
	if err := db.DB.First(&provider, "id = ?", c.Params("providerId")).Error; err != nil {
		return utils.Fail(c, "Provider not found", utils.ErrNotFound)
	}

	provider.Status = models.ProviderApproved
	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to approve provider",
		})
	}

	return c.JSON(utils.OK("Provider approved", provider))
}

// RejectProvider suspends an existing provider profile without touching the
// user or application.
func RejectProvider(c *fiber.Ctx) error {
	var provider models.Provider
	if err := db.DB.First(&provider, "id = ?", c.Params("providerId")).Error; err != nil {
		return utils.Fail(c, "Provider not found", utils.ErrNotFound)
	}

	provider.Status = models.ProviderRejected
	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reject provider",
		})
	}

	return c.JSON(utils.OK("Provider rejected", provider))
}

// DeleteProvider removes a provider and everything hanging off it, then
// demotes the owning user back to USER with a clean application slate.
func DeleteProvider(c *fiber.Ctx) error {
	var provider models.Provider
	if err := db.DB.First(&provider, "id = ?", c.Params("providerId")).Error; err != nil {
		return utils.Fail(c, "Provider not found", utils.ErrNotFound)
	}

	db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Service{})
	db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Booking{})
	db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Payment{})
	db.DB.Where("provider_id = ?", provider.ID).Delete(&models.Review{})
	db.DB.Where("user_id = ?", provider.UserID).Delete(&models.ProviderApplication{})

	db.DB.Model(&models.User{}).Where("id = ?", provider.UserID).Updates(map[string]interface{}{
		"role":                      models.RoleUser,
		"provider_rejected":         false,
		"provider_rejection_reason": "",
		"can_reapply":               true,
	})

	if err := db.DB.Delete(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete provider",
		})
	}

	return c.JSON(utils.OK("Provider deleted successfully and user role updated to user", nil))
}
