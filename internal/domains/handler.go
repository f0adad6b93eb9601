package domains

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the public domain search endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs a domain HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type searchRequest struct {
	DomainName string `json:"domainName"`
}

// Search handles POST /api/domain/search.
func (h *Handler) Search(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	results, err := h.svc.Search(c.UserContext(), req.DomainName)
	if err != nil {
		if errors.Is(err, ErrMissingName) {
			return fiber.NewError(http.StatusBadRequest, "Domain name is required")
		}
		h.logger.Error("domain search failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Domain search failed")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"results": results,
	})
}
