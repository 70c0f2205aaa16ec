package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"istem/config"
	"istem/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{JWTKey: "test-secret", JWTExpiry: expiry}
}

func protectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWT(cfg), func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId").(uint),
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig(24 * time.Hour)
	app := protectedApp(cfg)

	user := models.User{Name: "Alice", Email: "a@x.com", Role: models.RoleStudent}
	user.ID = 7

	token, err := GenerateJWT(cfg, &user)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, request(t, app, "Bearer "+token))
}

func TestJWTExpired(t *testing.T) {
	// Negative expiry issues a token that is already past its exp claim
	issueCfg := testConfig(-time.Minute)
	app := protectedApp(testConfig(24 * time.Hour))

	user := models.User{Email: "a@x.com"}
	user.ID = 1

	token, err := GenerateJWT(issueCfg, &user)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "Bearer "+token))
}

func TestJWTRejectsBadTokens(t *testing.T) {
	cfg := testConfig(24 * time.Hour)
	app := protectedApp(cfg)

	user := models.User{Email: "a@x.com"}
	user.ID = 1

	// Signed with a different secret
	forged, err := GenerateJWT(&config.Config{JWTKey: "other-secret", JWTExpiry: time.Hour}, &user)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "Token abc"))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "Bearer not.a.jwt"))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "Bearer "+forged))
}
