package hosting

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/myhost-cloud/myhost/internal/middleware"
)

// Handler exposes the purchase endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler constructs a hosting HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type purchaseRequest struct {
	Plan   string  `json:"plan"`
	Amount float64 `json:"amount"`
}

// Purchase handles POST /api/purchase. Requires an authenticated caller.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Access token required")
	}

	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	orderID, err := h.svc.Purchase(c.UserContext(), userID, req.Plan, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidPurchase) {
			return fiber.NewError(http.StatusBadRequest, "Plan and amount are required")
		}
		h.logger.Error("purchase failed", "user_id", userID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Purchase failed")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Purchase successful",
		"orderId": orderID,
	})
}
