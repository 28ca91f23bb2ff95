package models

import (
	"fmt"
	"strings"

	"github.com/meinhoongagan/servicehub-backend/utils"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type ProviderStatus string

const (
	ProviderPending  ProviderStatus = "PENDING"
	ProviderApproved ProviderStatus = "APPROVED"
	ProviderRejected ProviderStatus = "REJECTED"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// ParseBookingStatus parses a status case-insensitively and fails fast on
// unknown values instead of letting them reach the database.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToUpper(s)) {
	case BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled:
		return BookingStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", utils.ErrValidation, s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToUpper(s)) {
	case PaymentPending, PaymentCompleted, PaymentRefunded, PaymentFailed:
		return PaymentStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown payment status %q", utils.ErrValidation, s)
}

func ParseProviderStatus(s string) (ProviderStatus, error) {
	switch ProviderStatus(strings.ToUpper(s)) {
	case ProviderPending, ProviderApproved, ProviderRejected:
		return ProviderStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown provider status %q", utils.ErrValidation, s)
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToUpper(s)) {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return ApplicationStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown application status %q", utils.ErrValidation, s)
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleUser, RoleProvider, RoleAdmin:
		return Role(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", utils.ErrValidation, s)
}
