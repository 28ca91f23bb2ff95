package consumer

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

var validate = validator.New()

type ApplicationInput struct {
	BusinessName        string `json:"business_name" validate:"required"`
	BusinessDescription string `json:"business_description" validate:"required"`
	Category            string `json:"category" validate:"required"`
	Experience          string `json:"experience" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	Address             string `json:"address" validate:"required"`
	Certifications      string `json:"certifications"`
	Portfolio           string `json:"portfolio"`
}

// SubmitApplication files a provider application. Rejected users get exactly
// one more attempt, gated by the reapply flag.
func SubmitApplication(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	input := new(ApplicationInput)
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

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Fail(c, "User not found", utils.ErrNotFound)
	}

	var existing models.ProviderApplication
	hasLive := db.DB.Where("user_id = ? AND status IN ?", userID,
		[]models.ApplicationStatus{models.ApplicationPending, models.ApplicationApproved}).
		First(&existing).RowsAffected > 0

	if err := models.CanSubmitApplication(&user, hasLive); err != nil {
		return utils.Fail(c, "Cannot submit application", err)
	}

	application := models.ProviderApplication{
		UserID:              userID,
		BusinessName:        input.BusinessName,
		BusinessDescription: input.BusinessDescription,
		Category:            input.Category,
		Experience:          input.Experience,
		Phone:               input.Phone,
		Address:             input.Address,
		Certifications:      input.Certifications,
		Portfolio:           input.Portfolio,
		Status:              models.ApplicationPending,
	}

	if err := db.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit application",
		})
	}

	// A resubmission after a rejection consumes the reapply allowance; the
	// gate reopens only if this application is rejected too.
	if user.ProviderRejected && user.CanReapply {
		db.DB.Model(&user).Update("can_reapply", false)
	}

	return c.Status(fiber.StatusCreated).JSON(
		utils.OK("Application submitted successfully. Wait for admin approval.", application))
}

// GetApplicationStatus returns the caller's latest application, if any.
func GetApplicationStatus(c *fiber.Ctx) error {
	userID, _ := middleware.AuthContext(c)

	var application models.ProviderApplication
	if db.DB.Where("user_id = ?", userID).Order("created_at DESC").First(&application).RowsAffected == 0 {
		return c.JSON(utils.OK("No application found", fiber.Map{
			"has_application": false,
		}))
	}

	return c.JSON(utils.OK("Application status retrieved", fiber.Map{
		"has_application": true,
		"application":     application,
	}))
}
