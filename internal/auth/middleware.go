package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-gate/internal/domain"
	"github.com/spec-kit/admin-gate/internal/observability"
	apperrors "github.com/spec-kit/admin-gate/pkg/util/errorutil"
)

const identityKey = "auth_identity"

type identityCtxKey struct{}

// Verifier validates a raw token and yields the caller identity.
type Verifier interface {
	Verify(token string) (domain.Identity, error)
}

// AuthMiddleware validates bearer tokens and attaches the caller identity.
// It trusts the signature alone and never consults a store.
type AuthMiddleware struct {
	tokens  Verifier
	metrics *observability.Metrics
}

// NewAuthMiddleware constructs middleware. metrics may be nil.
func NewAuthMiddleware(tokens Verifier, metrics *observability.Metrics) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, metrics: metrics}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		m.metrics.RecordAuth(string(apperrors.KindMissingCredential))
		return apperrors.NewMissingCredential()
	}

	// The scheme word is not inspected; the second field is the token.
	var token string
	if parts := strings.Fields(authHeader); len(parts) >= 2 {
		token = parts[1]
	}

	identity, err := m.tokens.Verify(token)
	switch {
	case err == nil:
	case errors.Is(err, ErrTokenExpired):
		m.metrics.RecordAuth(string(apperrors.KindExpiredCredential))
		return apperrors.NewExpiredCredential(err)
	default:
		m.metrics.RecordAuth(string(apperrors.KindInvalidCredential))
		return apperrors.NewInvalidCredential(err)
	}

	m.metrics.RecordAuth("ok")
	c.Locals(identityKey, identity)
	c.Locals(observability.UserIDLocal, identity.UserID)
	c.SetUserContext(WithIdentity(c.UserContext(), identity))
	return c.Next()
}

// IdentityFromContext retrieves the identity attached by Handle.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFrom retrieves the identity from a plain context, for code below
// the HTTP layer.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity, ok
}
