package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-gate/internal/auth"
	apperrors "github.com/spec-kit/admin-gate/pkg/util/errorutil"
)

// SessionHandler echoes the identity established by the auth gate.
type SessionHandler struct{}

// NewSessionHandler constructs handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Current handles GET /api/session and its role-scoped variants.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewMissingCredential()
	}

	return c.JSON(fiber.Map{
		"status": true,
		"data": fiber.Map{
			"id":        identity.UserID,
			"role":      identity.Role,
			"expiresAt": identity.ExpiresAt,
		},
	})
}
