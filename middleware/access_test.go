package middleware

import (
	"testing"

	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	t.Run("owner can modify", func(t *testing.T) {
		assert.True(t, CanModify("user-1", models.RoleUser, "user-1"))
	})

	t.Run("other users cannot", func(t *testing.T) {
		assert.False(t, CanModify("user-2", models.RoleUser, "user-1"))
		assert.False(t, CanModify("user-2", models.RoleProvider, "user-1"))
	})

	t.Run("admin can modify anything", func(t *testing.T) {
		assert.True(t, CanModify("admin-1", models.RoleAdmin, "user-1"))
	})
}
