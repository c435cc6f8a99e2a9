package handlers

import (
	"errors"
	"log"

	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate checks request DTOs before they reach the services.
var validate = validator.New()

// statusForError maps the service error taxonomy onto HTTP status codes.
// Unknown errors stay 500 so business failures and real faults cannot be
// confused.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrNotImplemented):
		return fiber.StatusNotImplemented
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidPaymentMethod):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError renders a failed service call as a structured error
// response.
func serviceError(c *fiber.Ctx, message string, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// currentUserID reads the authenticated user's ID that the JWT middleware
// stored in the request locals. The services receive it as an explicit
// argument; nothing downstream reads ambient request state.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
