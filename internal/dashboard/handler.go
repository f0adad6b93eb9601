package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/myhost-cloud/myhost/internal/middleware"
)

// Handler exposes the dashboard endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs a dashboard HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Load handles GET /api/dashboard. Requires an authenticated caller.
func (h *Handler) Load(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Access token required")
	}

	data, err := h.svc.Load(c.UserContext(), userID)
	if err != nil {
		h.logger.Error("dashboard load failed", "user_id", userID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to load dashboard data")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
