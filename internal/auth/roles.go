package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-gate/internal/domain"
	apperrors "github.com/spec-kit/admin-gate/pkg/util/errorutil"
)

// RequireRole ensures the identity has one of the allowed roles.
// Must run after AuthMiddleware.Handle.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewMissingCredential()
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("not authorized as " + joinRoles(allowed))
		}
		return c.Next()
	}
}

// RequireAdmin is RequireRole(domain.RoleAdmin).
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// RequireAnyRole ensures caller is authenticated, whatever the role.
func RequireAnyRole() fiber.Handler {
	return RequireRole()
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
