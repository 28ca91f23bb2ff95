package admin

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// GetApplications lists provider applications, optionally filtered by
// status.
func GetApplications(c *fiber.Ctx) error {
	query := db.DB.Model(&models.ProviderApplication{})
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseApplicationStatus(status)
		if err != nil {
			return utils.Fail(c, "Invalid status filter", err)
		}
		query = query.Where("status = ?", parsed)
	}

	var applications []models.ProviderApplication
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get applications",
		})
	}

	return c.JSON(utils.OK("Applications retrieved successfully", applications))
}

// GetApplication returns one application.
func GetApplication(c *fiber.Ctx) error {
	var application models.ProviderApplication
	if err := db.DB.First(&application, "id = ?", c.Params("id")).Error; err != nil {
		return utils.Fail(c, "Application not found", utils.ErrNotFound)
	}

	return c.JSON(utils.OK("Application retrieved successfully", application))
}

// ApproveApplication resolves a pending application: the application is
// marked APPROVED, the user becomes a PROVIDER with rejection flags
// cleared, and the Provider profile is created approved by construction.
// This is the only path that creates a Provider.
func ApproveApplication(c *fiber.Ctx) error {
	adminID, _ := middleware.AuthContext(c)

	type ApproveInput struct {
		AdminNotes string `json:"admin_notes"`
	}
	input := new(ApproveInput)
	c.BodyParser(input)

	var application models.ProviderApplication
	if err := db.DB.First(&application, "id = ?", c.Params("id")).Error; err != nil {
		return utils.Fail(c, "Application not found", utils.ErrNotFound)
	}

	if application.Status != models.ApplicationPending {
		return utils.Fail(c, "Application already resolved",
			fmt.Errorf("%w: application is %s", utils.ErrInvalidTransition, application.Status))
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", application.UserID).Error; err != nil {
		return utils.Fail(c, "Applicant not found", utils.ErrNotFound)
	}

	user.Role = models.RoleProvider
	user.ProviderRejected = false
	user.ProviderRejectionReason = ""
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user role",
		})
	}

	provider := models.Provider{
		UserID:         user.ID,
		BusinessName:   application.BusinessName,
		Description:    application.BusinessDescription,
		Category:       application.Category,
		Experience:     application.Experience,
		Certifications: application.Certifications,
		ProfileImage:   application.BusinessImage,
		Status:         models.ProviderApproved,
	}
	if err := db.DB.Create(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create provider profile",
		})
	}

	now := time.Now()
	application.Status = models.ApplicationApproved
	application.AdminNotes = input.AdminNotes
	application.ReviewedBy = adminID
	application.ReviewedAt = &now
	if err := db.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update application",
		})
	}

	utils.SendEmailAsync(user.Email,
		"Your provider application was approved",
		fmt.Sprintf("<p>Hi %s,</p><p>Congratulations! Your application for <strong>%s</strong> has been approved. You can now publish services.</p>",
			user.Name, application.BusinessName))

	return c.JSON(utils.OK("Application approved successfully. User is now a provider.", fiber.Map{
		"application": application,
		"provider":    provider,
	}))
}

// RejectApplication resolves a pending application with a reason. The user
// keeps the rejection flag but the reapply gate stays open, so exactly one
// resubmission is possible.
func RejectApplication(c *fiber.Ctx) error {
	adminID, _ := middleware.AuthContext(c)

	type RejectInput struct {
		Reason string `json:"reason"`
	}
	input := new(RejectInput)
	c.BodyParser(input)
	if input.Reason == "" {
		input.Reason = "Application rejected by admin"
	}

	var application models.ProviderApplication
	if err := db.DB.First(&application, "id = ?", c.Params("id")).Error; err != nil {
		return utils.Fail(c, "Application not found", utils.ErrNotFound)
	}

	if application.Status != models.ApplicationPending {
		return utils.Fail(c, "Application already resolved",
			fmt.Errorf("%w: application is %s", utils.ErrInvalidTransition, application.Status))
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", application.UserID).Error; err != nil {
		return utils.Fail(c, "Applicant not found", utils.ErrNotFound)
	}

	user.ProviderRejected = true
	user.ProviderRejectionReason = input.Reason
	user.CanReapply = true
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	now := time.Now()
	application.Status = models.ApplicationRejected
	application.RejectionReason = input.Reason
	application.AdminNotes = input.Reason
	application.ReviewedBy = adminID
	application.ReviewedAt = &now
	if err := db.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update application",
		})
	}

	utils.SendEmailAsync(user.Email,
		"Your provider application was rejected",
		fmt.Sprintf("<p>Hi %s,</p><p>Unfortunately your application was rejected. Reason: %s.</p><p>You may submit one new application.</p>",
			user.Name, input.Reason))

	return c.JSON(utils.OK("Application rejected successfully", application))
}

// ResetProviderRejection clears a user's rejection state so they can apply
// again regardless of how many attempts they have used.
func ResetProviderRejection(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	user.ProviderRejected = false
	user.ProviderRejectionReason = ""
	user.CanReapply = true
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset rejection",
		})
	}

	user.Password = ""
	return c.JSON(utils.OK("Provider rejection reset", user))
}
