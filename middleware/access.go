package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
)

// CanModify is the ownership check applied before every per-identity
// mutation: the caller must own the resource or hold an elevated role.
func CanModify(authUserID string, role models.Role, ownerID string) bool {
	if role == models.RoleAdmin {
		return true
	}
	return authUserID == ownerID
}

// RequireRole reloads the user so role changes and blocks take effect
// immediately, then checks the required role.
func RequireRole(roleName models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User ID not found in context",
			})
		}

		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if user.IsBlocked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account is blocked",
			})
		}

		if user.Role != roleName && user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		// Refresh locals from the DB record, the token may be stale.
		c.Locals("role", string(user.Role))

		return c.Next()
	}
}

// AuthContext pulls the authenticated identity out of the request locals.
func AuthContext(c *fiber.Ctx) (string, models.Role) {
	userID, _ := c.Locals("userID").(string)
	roleStr, _ := c.Locals("role").(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		role = models.RoleUser
	}
	return userID, role
}
