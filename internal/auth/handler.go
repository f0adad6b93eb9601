package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/myhost-cloud/myhost/internal/identity"
)

// Handler exposes the registration and login endpoints.
type Handler struct {
	ids    *identity.Service
	tokens *TokenService
	logger *slog.Logger
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(ids *identity.Service, tokens *TokenService, logger *slog.Logger) *Handler {
	return &Handler{ids: ids, tokens: tokens, logger: logger}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    identity.Profile `json:"user"`
}

// Register handles POST /api/register.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Missing required fields")
	}

	user, err := h.ids.Register(c.UserContext(), identity.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			return fiber.NewError(http.StatusConflict, "User already exists")
		}
		h.logger.Error("registration failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusCreated).JSON(authResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    user.Profile(),
	})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Email and password required")
	}

	user, err := h.ids.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		// Covers corrupt stored hashes and store outages alike; detail stays
		// in the server log.
		h.logger.Error("login failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(authResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user.Profile(),
	})
}
