package identity

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocal is the Fiber Locals key under which the authenticated user id is stored.
const UserIDLocal = "user_id"

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

type profileResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Register handles user onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	user, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return HTTPError(h.logger, err)
	}
	h.logger.Info("identity.register completed",
		slog.String("user_id", user.ID),
		slog.Int("status", http.StatusOK),
	)
	return c.Status(http.StatusOK).JSON(registerResponse{UserID: user.ID})
}

// Me returns the profile of the user bound to the request by the token middleware.
func (h *Handler) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals(UserIDLocal).(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "Access Denied")
	}
	user, err := h.service.Get(c.UserContext(), uid)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return fiber.NewError(http.StatusNotFound, MessageOf(err))
		}
		return HTTPError(h.logger, err)
	}
	return c.Status(http.StatusOK).JSON(profileResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// HTTPError maps identity failures onto plain-text 400 responses. Failures
// outside the taxonomy become 500s; store and internal causes are logged.
func HTTPError(logger *slog.Logger, err error) error {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindNotFound, KindAuth:
		return fiber.NewError(http.StatusBadRequest, MessageOf(err))
	case KindStore:
		logger.Error("user store failure", slog.Any("error", err))
		return fiber.NewError(http.StatusBadRequest, MessageOf(err))
	default:
		logger.Error("unexpected identity failure", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "internal error")
	}
}
