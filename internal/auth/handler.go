package auth

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/userauth/internal/identity"
)

// TokenHeader carries the issued token on login responses and on
// authenticated requests.
const TokenHeader = "auth-token"

// Handler exposes the login endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler returns the HTTP handler for the login endpoint.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Login validates credentials and returns the token as the body and in the
// auth-token header.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req identity.Credentials
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	token, err := h.svc.Login(c.UserContext(), req)
	if err != nil {
		return identity.HTTPError(h.logger, err)
	}
	c.Set(TokenHeader, token)
	return c.Status(http.StatusOK).SendString(token)
}
