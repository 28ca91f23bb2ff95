package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, fiber.StatusNotFound},
		{ErrConflict, fiber.StatusConflict},
		{ErrInvalidTransition, fiber.StatusUnprocessableEntity},
		{ErrForbidden, fiber.StatusForbidden},
		{ErrValidation, fiber.StatusBadRequest},
		{ErrGateway, fiber.StatusBadGateway},
		{errors.New("something else"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), "for %v", tt.err)
	}
}

func TestStatusForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("booking 42: %w", ErrInvalidTransition)
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusFor(wrapped))

	doubleWrapped := fmt.Errorf("handler: %w", fmt.Errorf("lookup: %w", ErrNotFound))
	assert.Equal(t, fiber.StatusNotFound, StatusFor(doubleWrapped))
}
