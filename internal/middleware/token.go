package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/userauth/internal/auth"
	"github.com/congo-pay/userauth/internal/identity"
)

// UserIDKey is the Locals key holding the authenticated user id.
const UserIDKey = identity.UserIDLocal

// RequireToken rejects requests without a valid token in the auth-token header
// (or an Authorization bearer header) and binds the token subject to the request.
func RequireToken(signer *auth.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(auth.TokenHeader))
		if token == "" {
			authz := c.Get(fiber.HeaderAuthorization)
			if len(authz) > len("bearer ") && strings.EqualFold(authz[:len("bearer ")], "bearer ") {
				token = strings.TrimSpace(authz[len("bearer "):])
			}
		}
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "Access Denied")
		}

		claims, err := signer.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return fiber.NewError(http.StatusUnauthorized, "Token Expired")
			}
			return fiber.NewError(http.StatusBadRequest, "Invalid Token")
		}

		c.Locals(UserIDKey, claims.Subject)
		return c.Next()
	}
}
