package http

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/admin-gate/internal/auth"
	"github.com/spec-kit/admin-gate/internal/domain"
)

func expiredToken(secret string) (string, error) {
	past := time.Now().Add(-2 * time.Hour)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: "user-42",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
}
