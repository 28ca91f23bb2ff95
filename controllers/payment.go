package controllers

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/middleware"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

// toPaise converts a rupee amount to the gateway's minor units.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder creates a gateway order for a booking's total amount and
// persists the PENDING payment holding the order id.
func CreateOrder(c *fiber.Ctx) error {
	userID, role := middleware.AuthContext(c)

	type OrderInput struct {
		BookingID string `json:"booking_id"`
	}
	input := new(OrderInput)
	if err := c.BodyParser(input); err != nil || input.BookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "booking_id is required",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ?", input.BookingID).Error; err != nil {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}

	if !middleware.CanModify(userID, role, booking.UserID) {
		return utils.Fail(c, "Unauthorized access", utils.ErrForbidden)
	}

	// Pre-check: a completed payment blocks a second order. A pending or
	// failed record just gets a fresh order. Concurrent duplicates can
	// still slip past this check; the unique index on booking_id closes
	// that race at the persistence layer.
	var existing models.Payment
	hasExisting := db.DB.Where("booking_id = ?", booking.ID).First(&existing).RowsAffected > 0
	if hasExisting && existing.Status == models.PaymentCompleted {
		return utils.Fail(c, "Payment already completed for this booking", utils.ErrConflict)
	}

	orderID, err := utils.CreateRazorpayOrder("booking_"+booking.ID, toPaise(booking.TotalAmount))
	if err != nil {
		log.Printf("Create order failed for booking %s: %v", booking.ID, err)
		return utils.Fail(c, "Failed to create order", err)
	}

	var payment models.Payment
	if hasExisting {
		existing.Amount = booking.TotalAmount
		existing.PlatformFee = booking.PlatformFee
		existing.ProviderAmount = booking.ServiceAmount
		existing.RazorpayOrderID = orderID
		existing.Status = models.PaymentPending
		if err := db.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update payment",
			})
		}
		payment = existing
	} else {
		payment = models.Payment{
			BookingID:       booking.ID,
			UserID:          booking.UserID,
			ProviderID:      booking.ProviderID,
			Amount:          booking.TotalAmount,
			PlatformFee:     booking.PlatformFee,
			ProviderAmount:  booking.ServiceAmount,
			RazorpayOrderID: orderID,
			Status:          models.PaymentPending,
		}
		if err := db.DB.Create(&payment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create payment",
			})
		}
	}

	return c.JSON(utils.OK("Order created successfully", fiber.Map{
		"order_id": orderID,
		"amount":   toPaise(booking.TotalAmount),
		"currency": "INR",
		"key_id":   os.Getenv("RAZORPAY_KEY_ID"),
		"payment":  payment,
	}))
}

// VerifyPayment validates the gateway completion signature. Success marks
// the payment COMPLETED and force-accepts the booking: payment confirms the
// booking regardless of its prior state.
func VerifyPayment(c *fiber.Ctx) error {
	type VerifyInput struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var payment models.Payment
	if db.DB.Where("razorpay_order_id = ?", input.RazorpayOrderID).First(&payment).RowsAffected == 0 {
		return utils.Fail(c, "Payment not found", utils.ErrNotFound)
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !utils.VerifyRazorpaySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, secret) {
		models.ApplyVerification(&payment, nil, input.RazorpayPaymentID, input.RazorpaySignature, false)
		db.DB.Save(&payment)
		return utils.Fail(c, "Payment verification failed",
			fmt.Errorf("%w: invalid signature", utils.ErrGateway))
	}

	var booking models.Booking
	var accepted *models.Booking
	if db.DB.First(&booking, "id = ?", payment.BookingID).RowsAffected > 0 {
		accepted = &booking
	}

	models.ApplyVerification(&payment, accepted, input.RazorpayPaymentID, input.RazorpaySignature, true)
	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update payment",
		})
	}

	if accepted != nil {
		if err := db.DB.Save(accepted).Error; err != nil {
			log.Printf("Failed to accept booking %s after payment: %v", booking.ID, err)
		}
	}

	return c.JSON(utils.OK("Payment verified successfully", fiber.Map{
		"payment":    payment,
		"payment_id": input.RazorpayPaymentID,
	}))
}

// InitiateRefund refunds a completed payment in full through the gateway
// and marks it REFUNDED. The booking is left untouched.
func InitiateRefund(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")

	type RefundInput struct {
		Reason string `json:"reason"`
	}
	input := new(RefundInput)
	c.BodyParser(input)
	if input.Reason == "" {
		input.Reason = "Service cancellation"
	}

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return utils.Fail(c, "Payment not found", utils.ErrNotFound)
	}

	if payment.Status != models.PaymentCompleted {
		return utils.Fail(c, "Only completed payments can be refunded",
			fmt.Errorf("%w: payment is %s", utils.ErrInvalidTransition, payment.Status))
	}

	refundID, err := utils.RazorpayRefund(payment.RazorpayPaymentID, toPaise(payment.Amount), input.Reason)
	if err != nil {
		log.Printf("Refund failed for payment %s: %v", payment.ID, err)
		return utils.Fail(c, "Failed to initiate refund", err)
	}

	payment.Status = models.PaymentRefunded
	payment.RefundID = refundID
	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update payment",
		})
	}

	return c.JSON(utils.OK("Refund initiated successfully", payment))
}

// GetPaymentDetails returns a payment, visible to its user, its provider's
// owner, or an admin.
func GetPaymentDetails(c *fiber.Ctx) error {
	userID, role := middleware.AuthContext(c)

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ?", c.Params("paymentId")).Error; err != nil {
		return utils.Fail(c, "Payment not found", utils.ErrNotFound)
	}

	allowed := middleware.CanModify(userID, role, payment.UserID)
	if !allowed {
		var provider models.Provider
		if db.DB.First(&provider, "id = ?", payment.ProviderID).RowsAffected > 0 {
			allowed = provider.UserID == userID
		}
	}
	if !allowed {
		return utils.Fail(c, "Unauthorized access", utils.ErrForbidden)
	}

	return c.JSON(utils.OK("Payment details retrieved", payment))
}

// GetPaymentByBooking returns the payment attached to a booking.
func GetPaymentByBooking(c *fiber.Ctx) error {
	userID, role := middleware.AuthContext(c)

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return utils.Fail(c, "Booking not found", utils.ErrNotFound)
	}
	if !middleware.CanModify(userID, role, booking.UserID) {
		return utils.Fail(c, "Unauthorized access", utils.ErrForbidden)
	}

	var payment models.Payment
	if db.DB.Where("booking_id = ?", booking.ID).First(&payment).RowsAffected == 0 {
		return utils.Fail(c, "Payment not found", utils.ErrNotFound)
	}

	return c.JSON(utils.OK("Payment retrieved", payment))
}
