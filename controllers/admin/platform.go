package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/redis"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

const categoriesCacheKey = "catalog:categories"

// UpdatePlatformFee changes the fee percentage applied to new bookings.
// Existing bookings keep the amounts they were created with.
func UpdatePlatformFee(c *fiber.Ctx) error {
	type FeeInput struct {
		FeePercentage float64 `json:"fee_percentage"`
	}
	input := new(FeeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.FeePercentage < 0 || input.FeePercentage > 100 {
		return utils.Fail(c, "Fee percentage must be between 0 and 100",
			fmt.Errorf("%w: fee percentage out of range", utils.ErrValidation))
	}

	config, err := models.GetPlatformConfig(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load platform config",
		})
	}

	config.FeePercentage = input.FeePercentage
	if err := db.DB.Save(config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update platform fee",
		})
	}

	return c.JSON(utils.OK("Platform fee updated", config))
}

// AddCategory appends a new service category.
func AddCategory(c *fiber.Ctx) error {
	type CategoryInput struct {
		Name string `json:"name"`
	}
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	config, err := models.GetPlatformConfig(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load platform config",
		})
	}

	for _, existing := range config.Categories {
		if existing == input.Name {
			return utils.Fail(c, "Category already exists", utils.ErrConflict)
		}
	}

	config.Categories = append(config.Categories, input.Name)
	if err := db.DB.Save(config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add category",
		})
	}

	redis.Invalidate(categoriesCacheKey)
	return c.JSON(utils.OK("Category added", config.Categories))
}

// DeleteCategory removes a category unless services still use it.
func DeleteCategory(c *fiber.Ctx) error {
	name := c.Params("name")

	var inUse int64
	db.DB.Model(&models.Service{}).Where("category = ?", name).Count(&inUse)
	if inUse > 0 {
		return utils.Fail(c, "Category is in use by existing services",
			fmt.Errorf("%w: %d services use this category", utils.ErrConflict, inUse))
	}

	config, err := models.GetPlatformConfig(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load platform config",
		})
	}

	kept := make([]string, 0, len(config.Categories))
	found := false
	for _, existing := range config.Categories {
		if existing == name {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return utils.Fail(c, "Category not found", utils.ErrNotFound)
	}

	config.Categories = kept
	if err := db.DB.Save(config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	redis.Invalidate(categoriesCacheKey)
	return c.JSON(utils.OK("Category deleted", config.Categories))
}

// GetPayments lists every payment.
func GetPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := db.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get payments",
		})
	}

	return c.JSON(utils.OK("Payments retrieved", payments))
}

// GetPlatformEarnings sums the platform fees collected on completed
// payments.
func GetPlatformEarnings(c *fiber.Ctx) error {
	var totalFees, totalVolume float64
	db.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(platform_fee), 0)").
		Where("status = ?", models.PaymentCompleted).
		Scan(&totalFees)
	db.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", models.PaymentCompleted).
		Scan(&totalVolume)

	var completedPayments int64
	db.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Count(&completedPayments)

	return c.JSON(utils.OK("Platform earnings retrieved", fiber.Map{
		"total_fees":         utils.Round2(totalFees),
		"total_volume":       utils.Round2(totalVolume),
		"completed_payments": completedPayments,
	}))
}

// GetDashboardStats returns the platform-wide counters for the admin
// dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	var totalUsers, totalProviders, totalServices, totalBookings, pendingApplications int64
	db.DB.Model(&models.User{}).Count(&totalUsers)
	db.DB.Model(&models.Provider{}).Count(&totalProviders)
	db.DB.Model(&models.Service{}).Count(&totalServices)
	db.DB.Model(&models.Booking{}).Count(&totalBookings)
	db.DB.Model(&models.ProviderApplication{}).
		Where("status = ?", models.ApplicationPending).
		Count(&pendingApplications)

	var totalFees float64
	db.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(platform_fee), 0)").
		Where("status = ?", models.PaymentCompleted).
		Scan(&totalFees)

	return c.JSON(utils.OK("Dashboard stats retrieved", fiber.Map{
		"total_users":          totalUsers,
		"total_providers":      totalProviders,
		"total_services":       totalServices,
		"total_bookings":       totalBookings,
		"pending_applications": pendingApplications,
		"platform_earnings":    utils.Round2(totalFees),
	}))
}
