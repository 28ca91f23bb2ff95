package provider

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

var validate = validator.New()

// currentProvider resolves the caller's provider profile.
func currentProvider(c *fiber.Ctx) (*models.Provider, error) {
	userID, _ := middleware.AuthContext(c)

	var provider models.Provider
	if db.DB.Where("user_id = ?", userID).First(&provider).RowsAffected == 0 {
		return nil, fmt.Errorf("%w: provider profile not found", utils.ErrNotFound)
	}
	return &provider, nil
}

type ServiceInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
}

// CreateService adds a new offering for an approved provider.
func CreateService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	if provider.Status != models.ProviderApproved {
		return utils.Fail(c, "Provider not approved yet",
			fmt.Errorf("%w: provider is %s", utils.ErrForbidden, provider.Status))
	}

	input := new(ServiceInput)
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

	service := models.Service{
		ProviderID:  provider.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Duration:    input.Duration,
		IsAvailable: true,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(utils.OK("Service created", service))
}

// GetServices lists the caller's services.
func GetServices(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var services []models.Service
	if err := db.DB.Where("provider_id = ?", provider.ID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get services",
		})
	}

	return c.JSON(utils.OK("Services retrieved", services))
}

// UpdateService edits one of the caller's services.
func UpdateService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var service models.Service
	if db.DB.Where("id = ? AND provider_id = ?", c.Params("serviceId"), provider.ID).
		First(&service).RowsAffected == 0 {
		return utils.Fail(c, "Service not found", utils.ErrNotFound)
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Price < 0 {
		return utils.Fail(c, "Price cannot be negative",
			fmt.Errorf("%w: negative price", utils.ErrValidation))
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"category":    input.Category,
		"price":       input.Price,
		"duration":    input.Duration,
	}
	if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	return c.JSON(utils.OK("Service updated", service))
}

// DeleteService removes one of the caller's services.
func DeleteService(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	result := db.DB.Where("id = ? AND provider_id = ?", c.Params("serviceId"), provider.ID).
		Delete(&models.Service{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, "Service not found", utils.ErrNotFound)
	}

	return c.JSON(utils.OK("Service deleted", nil))
}

// ToggleAvailability flips whether a service can be booked.
func ToggleAvailability(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return utils.Fail(c, "Provider profile not found", err)
	}

	var service models.Service
	if db.DB.Where("id = ? AND provider_id = ?", c.Params("serviceId"), provider.ID).
		First(&service).RowsAffected == 0 {
		return utils.Fail(c, "Service not found", utils.ErrNotFound)
	}

	service.IsAvailable = !service.IsAvailable
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}

	return c.JSON(utils.OK("Service availability updated", service))
}
