package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/constants"
	tokenService "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/service"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		AuthMiddleware(),
		OnlyRoles("Forbidden: Only teachers can add lessons.", constants.RoleTeacher),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"name": GetUserName(c),
				"role": GetUserRole(c),
				"id":   GetUserID(c),
			})
		},
	)
	return app
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus.token.value")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareWrongRole(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	token, err := tokenService.GenerateAccessToken("test-secret", constants.RoleStudent, "Aye Chan", uuid.New())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	id := uuid.New()
	token, err := tokenService.GenerateAccessToken("test-secret", constants.RoleTeacher, "U Hein Thet Aung", id)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["name"] != "U Hein Thet Aung" || body["role"] != constants.RoleTeacher || body["id"] != id.String() {
		t.Fatalf("unexpected claims in context: %v", body)
	}
}
