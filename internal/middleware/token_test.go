package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-pay/userauth/internal/auth"
)

func setupProtectedApp(signer *auth.Signer) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireToken(signer), func(c *fiber.Ctx) error {
		uid, _ := c.Locals(UserIDKey).(string)
		return c.SendString(uid)
	})
	return app
}

func getMe(t *testing.T, app *fiber.App, headers map[string]string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireTokenAcceptsAuthTokenHeader(t *testing.T) {
	signer := auth.NewSigner("s3cret", time.Hour)
	token, err := signer.Sign("user-1")
	require.NoError(t, err)

	status, body := getMe(t, setupProtectedApp(signer), map[string]string{auth.TokenHeader: token})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body)
}

func TestRequireTokenAcceptsBearerHeader(t *testing.T) {
	signer := auth.NewSigner("s3cret", time.Hour)
	token, err := signer.Sign("user-1")
	require.NoError(t, err)

	status, body := getMe(t, setupProtectedApp(signer), map[string]string{fiber.HeaderAuthorization: "Bearer " + token})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body)
}

func TestRequireTokenRejections(t *testing.T) {
	signer := auth.NewSigner("s3cret", time.Hour)
	other, err := auth.NewSigner("other", time.Hour).Sign("user-1")
	require.NoError(t, err)

	app := setupProtectedApp(signer)

	status, body := getMe(t, app, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Access Denied", body)

	status, body = getMe(t, app, map[string]string{auth.TokenHeader: other})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid Token", body)
}

func TestRequireTokenRejectsExpiredToken(t *testing.T) {
	signer := auth.NewSigner("s3cret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
		},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	status, body := getMe(t, setupProtectedApp(signer), map[string]string{auth.TokenHeader: expired})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Token Expired", body)
}
