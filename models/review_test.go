package models

import (
	"testing"

	"github.com/meinhoongagan/servicehub-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanReview(t *testing.T) {
	completed := &Booking{UserID: "user-1", Status: BookingCompleted}

	t.Run("completed booking by its owner", func(t *testing.T) {
		assert.NoError(t, CanReview(completed, "user-1", false))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		err := CanReview(completed, "user-2", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("booking not completed", func(t *testing.T) {
		for _, status := range []BookingStatus{BookingPending, BookingAccepted, BookingRejected, BookingCancelled} {
			b := &Booking{UserID: "user-1", Status: status}
			err := CanReview(b, "user-1", false)
			assert.ErrorIs(t, err, utils.ErrInvalidTransition, "status %s", status)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		err := CanReview(completed, "user-1", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrConflict)
	})
}

func TestAverageRating(t *testing.T) {
	t.Run("mean rounded to one decimal", func(t *testing.T) {
		avg, ok := AverageRating([]int{5, 4, 5, 3, 5})
		require.True(t, ok)
		assert.InDelta(t, 4.4, avg, 0.001)
	})

	t.Run("half stars survive rounding", func(t *testing.T) {
		avg, ok := AverageRating([]int{4, 5})
		require.True(t, ok)
		assert.InDelta(t, 4.5, avg, 0.001)
	})

	t.Run("single rating", func(t *testing.T) {
		avg, ok := AverageRating([]int{3})
		require.True(t, ok)
		assert.InDelta(t, 3.0, avg, 0.001)
	})

	t.Run("empty set reports no average", func(t *testing.T) {
		avg, ok := AverageRating(nil)
		assert.False(t, ok)
		assert.Zero(t, avg)
	})
}

func TestRecalculateRatingsPropagateQueryErrors(t *testing.T) {
	db := unreachableDB(t)

	require.Error(t, RecalculateServiceRating(db, "svc-1"))
	require.Error(t, RecalculateProviderRating(db, "prov-1"))
}
