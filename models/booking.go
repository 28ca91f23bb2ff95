package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/servicehub-backend/utils"
	"gorm.io/gorm"
)

type Booking struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	UserID        string        `json:"user_id" gorm:"index"`
	ServiceID     string        `json:"service_id" gorm:"index"`
	ProviderID    string        `json:"provider_id" gorm:"index"`
	BookingDate   string        `json:"booking_date"` // calendar date, YYYY-MM-DD
	BookingTime   string        `json:"booking_time"`
	UserAddress   string        `json:"user_address"`
	Notes         string        `json:"notes"`
	Status        BookingStatus `json:"status" gorm:"default:PENDING"`
	ServiceAmount float64       `json:"service_amount"`
	PlatformFee   float64       `json:"platform_fee"`
	TotalAmount   float64       `json:"total_amount"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// ComputeFees derives the booking amounts from a service price and the
// platform fee percentage. The fee is rounded to two decimals.
func ComputeFees(price, feePercentage float64) (serviceAmount, platformFee, totalAmount float64) {
	serviceAmount = price
	platformFee = utils.Round2(serviceAmount * feePercentage / 100)
	totalAmount = serviceAmount + platformFee
	return
}

// CanTransition reports whether the booking state machine allows the move.
// PENDING -> ACCEPTED | REJECTED | CANCELLED
// ACCEPTED -> COMPLETED | CANCELLED
// REJECTED -> CANCELLED
// COMPLETED and CANCELLED are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingAccepted || to == BookingRejected || to == BookingCancelled
	case BookingAccepted:
		return to == BookingCompleted || to == BookingCancelled
	case BookingRejected:
		return to == BookingCancelled
	default:
		return false
	}
}

// UpdateStatus applies a transition through the state machine and saves the
// booking. Illegal moves fail with ErrInvalidTransition.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", utils.ErrInvalidTransition, b.Status, newStatus)
	}
	b.Status = newStatus
	return tx.Save(b).Error
}

// ForceStatus is the administrative override: it bypasses the transition
// table entirely. Only admin tooling may reach this; the normal API goes
// through UpdateStatus.
func (b *Booking) ForceStatus(tx *gorm.DB, newStatus BookingStatus) error {
	b.Status = newStatus
	return tx.Save(b).Error
}
