package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors for the failure taxonomy. Domain code wraps these with
// fmt.Errorf("...: %w", Err...) so handlers can map them to HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrGateway           = errors.New("payment gateway error")
)

// StatusFor maps a domain error to an HTTP status code. Unknown errors are
// treated as internal so collaborator failures never leak details beyond
// the message string.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrGateway):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail writes a domain error as a JSON response using the taxonomy mapping.
func Fail(c *fiber.Ctx, message string, err error) error {
	return c.Status(StatusFor(err)).JSON(ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
