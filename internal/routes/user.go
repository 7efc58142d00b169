package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/userauth/internal/auth"
	"github.com/congo-pay/userauth/internal/identity"
)

// RegisterUserRoutes wires registration, login and the token-guarded profile endpoint.
func RegisterUserRoutes(r fiber.Router, ids *identity.Handler, authn *auth.Handler, idempotency, requireToken fiber.Handler) {
	group := r.Group("/user")
	group.Post("/register", idempotency, ids.Register)
	group.Post("/login", authn.Login)
	group.Get("/me", requireToken, ids.Me)
}
