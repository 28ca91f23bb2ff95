package models

import (
	"testing"

	"github.com/meinhoongagan/servicehub-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanSubmitApplication(t *testing.T) {
	t.Run("fresh user can apply", func(t *testing.T) {
		user := &User{Role: RoleUser, CanReapply: true}
		assert.NoError(t, CanSubmitApplication(user, false))
	})

	t.Run("providers cannot reapply", func(t *testing.T) {
		user := &User{Role: RoleProvider}
		err := CanSubmitApplication(user, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	t.Run("rejected user without reapply flag is locked out", func(t *testing.T) {
		user := &User{Role: RoleUser, ProviderRejected: true, CanReapply: false}
		err := CanSubmitApplication(user, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("rejected user with reapply flag gets one more attempt", func(t *testing.T) {
		user := &User{Role: RoleUser, ProviderRejected: true, CanReapply: true}
		assert.NoError(t, CanSubmitApplication(user, false))
	})

	t.Run("live application blocks duplicates", func(t *testing.T) {
		user := &User{Role: RoleUser, CanReapply: true}
		err := CanSubmitApplication(user, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrConflict)
	})
}
