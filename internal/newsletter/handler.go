package newsletter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the public newsletter signup endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs a newsletter HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter.
func (h *Handler) Subscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Subscribe(c.UserContext(), req.Email); err != nil {
		switch {
		case errors.Is(err, ErrMissingEmail):
			return fiber.NewError(http.StatusBadRequest, "Email is required")
		case errors.Is(err, ErrAlreadySubscribed):
			return fiber.NewError(http.StatusConflict, "Email already subscribed")
		default:
			h.logger.Error("newsletter subscription failed", "error", err)
			return fiber.NewError(http.StatusInternalServerError, "Subscription failed")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully subscribed to newsletter",
	})
}
