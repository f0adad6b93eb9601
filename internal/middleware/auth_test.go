package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/myhost-cloud/myhost/internal/auth"
)

func newProtectedApp(tokens *auth.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		id, _ := UserID(c)
		email, _ := c.Locals(LocalsUserEmail).(string)
		return c.JSON(fiber.Map{"user_id": id, "email": email})
	})
	app.Get("/admin", RequireAuth(tokens), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestRequireAuthMissingToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	app := newProtectedApp(tokens)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	app := newProtectedApp(tokens)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, resp.StatusCode)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	issuer := auth.NewTokenService("test-secret", -time.Minute)
	token, err := issuer.Issue(1, "ann@example.com", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newProtectedApp(auth.NewTokenService("test-secret", time.Hour))

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, resp.StatusCode)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(7, "ann@example.com", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newProtectedApp(tokens)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	app := newProtectedApp(tokens)

	member, err := tokens.Issue(7, "ann@example.com", false)
	if err != nil {
		t.Fatalf("issue member token: %v", err)
	}
	admin, err := tokens.Issue(1, "root@example.com", true)
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+member)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected %d for non-admin got %d", http.StatusForbidden, resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+admin)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d for admin got %d", http.StatusOK, resp.StatusCode)
	}
}
