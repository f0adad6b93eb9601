package contact

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the public contact form endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs a contact HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return fiber.NewError(http.StatusBadRequest, "All fields are required")
	}

	err := h.svc.Submit(c.UserContext(), Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		h.logger.Error("contact submission failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to send message")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contact message sent successfully",
	})
}
