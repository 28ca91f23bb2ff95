package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment holds the gateway order for a booking. At most one non-deleted
// payment may exist per booking; CreateOrder enforces this with a pre-check
// (a known race under concurrent duplicates, see the uniqueIndex).
type Payment struct {
	ID                string        `json:"id" gorm:"primaryKey"`
	BookingID         string        `json:"booking_id" gorm:"uniqueIndex"`
	UserID            string        `json:"user_id" gorm:"index"`
	ProviderID        string        `json:"provider_id" gorm:"index"`
	Amount            float64       `json:"amount"`
	PlatformFee       float64       `json:"platform_fee"`
	ProviderAmount    float64       `json:"provider_amount"`
	Status            PaymentStatus `json:"status" gorm:"default:PENDING"`
	PaymentMethod     string        `json:"payment_method" gorm:"default:razorpay"`
	RazorpayOrderID   string        `json:"razorpay_order_id" gorm:"index"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	RazorpaySignature string        `json:"razorpay_signature"`
	RefundID          string        `json:"refund_id"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}

// ApplyVerification records a signature check outcome in memory. A valid
// signature completes the payment and forces the booking to ACCEPTED no
// matter its prior state; an invalid one fails the payment and leaves the
// booking untouched.
func ApplyVerification(p *Payment, b *Booking, paymentID, signature string, valid bool) {
	if !valid {
		p.Status = PaymentFailed
		return
	}
	p.RazorpayPaymentID = paymentID
	p.RazorpaySignature = signature
	p.Status = PaymentCompleted
	if b != nil {
		b.Status = BookingAccepted
	}
}

// RefundLocallyOnCancel flips a completed payment to REFUNDED when its
// booking is cancelled, and reports whether the payment changed. The
// gateway refund stays a separate explicit call on the payment surface.
func RefundLocallyOnCancel(p *Payment) bool {
	if p.Status != PaymentCompleted {
		return false
	}
	p.Status = PaymentRefunded
	return true
}
