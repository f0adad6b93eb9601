package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// JSONErrorHandler renders every handler error as the storefront's envelope.
// Frontend clients key off the success flag and the message text.
func JSONErrorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
