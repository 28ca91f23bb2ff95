package models

import (
	"testing"

	"github.com/meinhoongagan/servicehub-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	t.Run("accepts canonical values", func(t *testing.T) {
		for _, s := range []string{"PENDING", "ACCEPTED", "REJECTED", "COMPLETED", "CANCELLED"} {
			got, err := ParseBookingStatus(s)
			require.NoError(t, err)
			assert.Equal(t, BookingStatus(s), got)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		got, err := ParseBookingStatus("completed")
		require.NoError(t, err)
		assert.Equal(t, BookingCompleted, got)

		got, err = ParseBookingStatus("Accepted")
		require.NoError(t, err)
		assert.Equal(t, BookingAccepted, got)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseBookingStatus("ARCHIVED")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrValidation)

		_, err = ParseBookingStatus("")
		assert.ErrorIs(t, err, utils.ErrValidation)
	})
}

func TestParsePaymentStatus(t *testing.T) {
	got, err := ParsePaymentStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, PaymentRefunded, got)

	_, err = ParsePaymentStatus("CAPTURED")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestParseApplicationStatus(t *testing.T) {
	got, err := ParseApplicationStatus("Approved")
	require.NoError(t, err)
	assert.Equal(t, ApplicationApproved, got)

	_, err = ParseApplicationStatus("WITHDRAWN")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestParseRole(t *testing.T) {
	got, err := ParseRole("provider")
	require.NoError(t, err)
	assert.Equal(t, RoleProvider, got)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
