package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// UploadProfileImage stores the caller's profile picture on the media host
// and saves the returned URL. The previous asset is deleted best-effort.
func UploadProfileImage(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read uploaded file",
		})
	}
	defer file.Close()

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("user_%s_%s", userID, uuid.NewString()[:8]), "profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if user.ProfileImage != "" {
		utils.DeleteFromCloudinary(user.ProfileImage)
	}

	user.ProfileImage = url
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile image",
		})
	}

	return c.JSON(utils.OK("Image uploaded", fiber.Map{"url": url}))
}

// UploadServiceImage attaches an image to one of the caller's services.
func UploadServiceImage(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)
	serviceID := c.Params("serviceId")

	var provider models.Provider
	if db.DB.Where("user_id = ?", userID).First(&provider).RowsAffected == 0 {
		return utils.Fail(c, "Provider profile not found", utils.ErrNotFound)
	}

	var service models.Service
	if db.DB.Where("id = ? AND provider_id = ?", serviceID, provider.ID).First(&service).RowsAffected == 0 {
		return utils.Fail(c, "Service not found", utils.ErrNotFound)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("service_%s_%s", serviceID, uuid.NewString()[:8]), "services")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if service.Image != "" {
		utils.DeleteFromCloudinary(service.Image)
	}

	service.Image = url
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save service image",
		})
	}

	return c.JSON(utils.OK("Image uploaded", fiber.Map{"url": url}))
}
