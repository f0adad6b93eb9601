package admin

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the admin statistics endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs an admin HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Stats handles GET /api/admin/stats. Requires an authenticated admin.
func (h *Handler) Stats(c *fiber.Ctx) error {
	stats, err := h.svc.Stats(c.UserContext())
	if err != nil {
		h.logger.Error("stats aggregation failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to load statistics")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
