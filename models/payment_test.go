package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVerificationValidSignature(t *testing.T) {
	t.Run("completes the payment and records gateway ids", func(t *testing.T) {
		payment := &Payment{Status: PaymentPending}
		booking := &Booking{Status: BookingPending}

		ApplyVerification(payment, booking, "pay_abc", "sig_abc", true)

		assert.Equal(t, PaymentCompleted, payment.Status)
		assert.Equal(t, "pay_abc", payment.RazorpayPaymentID)
		assert.Equal(t, "sig_abc", payment.RazorpaySignature)
		assert.Equal(t, BookingAccepted, booking.Status)
	})

	t.Run("accepts the booking from any prior state", func(t *testing.T) {
		for _, status := range []BookingStatus{
			BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled,
		} {
			payment := &Payment{Status: PaymentPending}
			booking := &Booking{Status: status}

			ApplyVerification(payment, booking, "pay_abc", "sig_abc", true)

			assert.Equal(t, BookingAccepted, booking.Status, "from %s", status)
		}
	})

	t.Run("missing booking does not fail the payment", func(t *testing.T) {
		payment := &Payment{Status: PaymentPending}
		ApplyVerification(payment, nil, "pay_abc", "sig_abc", true)
		assert.Equal(t, PaymentCompleted, payment.Status)
	})
}

func TestApplyVerificationInvalidSignature(t *testing.T) {
	payment := &Payment{Status: PaymentPending}
	booking := &Booking{Status: BookingPending}

	ApplyVerification(payment, booking, "pay_abc", "sig_bad", false)

	assert.Equal(t, PaymentFailed, payment.Status)
	assert.Empty(t, payment.RazorpayPaymentID)
	assert.Empty(t, payment.RazorpaySignature)
	assert.Equal(t, BookingPending, booking.Status, "booking must stay untouched")
}

func TestRefundLocallyOnCancel(t *testing.T) {
	t.Run("completed payment flips to refunded", func(t *testing.T) {
		payment := &Payment{Status: PaymentCompleted}
		assert.True(t, RefundLocallyOnCancel(payment))
		assert.Equal(t, PaymentRefunded, payment.Status)
	})

	t.Run("other statuses are left alone", func(t *testing.T) {
		for _, status := range []PaymentStatus{PaymentPending, PaymentFailed, PaymentRefunded} {
			payment := &Payment{Status: status}
			assert.False(t, RefundLocallyOnCancel(payment), "status %s", status)
			assert.Equal(t, status, payment.Status)
		}
	})
}
