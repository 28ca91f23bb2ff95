package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to accepted", BookingPending, BookingAccepted, true},
		{"pending to rejected", BookingPending, BookingRejected, true},
		{"pending to cancelled", BookingPending, BookingCancelled, true},
		{"pending to completed skips acceptance", BookingPending, BookingCompleted, false},
		{"accepted to completed", BookingAccepted, BookingCompleted, true},
		{"accepted to cancelled", BookingAccepted, BookingCancelled, true},
		{"accepted back to pending", BookingAccepted, BookingPending, false},
		{"accepted to rejected", BookingAccepted, BookingRejected, false},
		{"completed is terminal", BookingCompleted, BookingCancelled, false},
		{"rejected booking can still be cancelled", BookingRejected, BookingCancelled, true},
		{"rejected cannot be accepted", BookingRejected, BookingAccepted, false},
		{"cancelled is terminal", BookingCancelled, BookingPending, false},
		{"cancelled cannot be cancelled again", BookingCancelled, BookingCancelled, false},
		{"no self transition", BookingPending, BookingPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestComputeFees(t *testing.T) {
	tests := []struct {
		name        string
		price       float64
		feePct      float64
		wantService float64
		wantFee     float64
		wantTotal   float64
	}{
		{"ten percent", 500, 10, 500, 50, 550},
		{"fee rounds to two decimals", 999.99, 10, 999.99, 100.00, 1099.99},
		{"zero fee percentage", 250, 0, 250, 0, 250},
		{"fractional price", 149.50, 12.5, 149.50, 18.69, 168.19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fee, total := ComputeFees(tt.price, tt.feePct)
			assert.InDelta(t, tt.wantService, service, 0.001)
			assert.InDelta(t, tt.wantFee, fee, 0.001)
			assert.InDelta(t, tt.wantTotal, total, 0.001)
		})
	}
}
