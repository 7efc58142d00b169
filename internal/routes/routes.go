package routes

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/userauth/internal/auth"
	"github.com/congo-pay/userauth/internal/config"
	"github.com/congo-pay/userauth/internal/identity"
	"github.com/congo-pay/userauth/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	SQL    *sql.DB
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.SQL == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}
	if d.Cfg.TokenSecret == "" {
		return fmt.Errorf("token secret is required")
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	var identityRepo identity.Repository
	if d.SQL != nil {
		identityRepo = identity.NewPostgresRepository(d.SQL)
	} else {
		d.Logger.Warn("no database configured, using in-memory user store")
		identityRepo = identity.NewMemoryRepository()
	}
	identitySvc := identity.NewService(identityRepo, identity.NewBcryptHasher(d.Cfg.BcryptCost))
	signer := auth.NewSigner(d.Cfg.TokenSecret, d.Cfg.TokenTTL)
	authSvc := auth.NewService(identitySvc, signer)

	identityHandler := identity.NewHandler(identitySvc, d.Logger)
	authHandler := auth.NewHandler(authSvc, d.Logger)
	idempotency := middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger, "user.register")
	requireToken := middleware.RequireToken(signer)

	// Served both at the root and under /api; replays are shared between the two.
	RegisterUserRoutes(app, identityHandler, authHandler, idempotency, requireToken)
	RegisterUserRoutes(app.Group("/api"), identityHandler, authHandler, idempotency, requireToken)

	return nil
}
