package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/admin-gate/internal/domain"
)

// Verification failures. Callers branch on these with errors.Is.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenManager handles issuing and validating JWT tokens. The secret is
// fixed at construction.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Claims describes JWT payload.
type Claims struct {
	UserID string      `json:"id"`
	Role   domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the user.
func (tm *TokenManager) GenerateToken(userID string, role domain.Role) (string, time.Time, error) {
	now := tm.now()
	return tm.sign(userID, role, now, now.Add(tm.ttl))
}

func (tm *TokenManager) sign(userID string, role domain.Role, issuedAt, expiresAt time.Time) (string, time.Time, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify validates signature and expiry and returns the decoded identity.
// Errors wrap ErrTokenExpired when only the expiry check failed and
// ErrTokenInvalid for everything else.
func (tm *TokenManager) Verify(tokenStr string) (domain.Identity, error) {
	claims, err := tm.ParseToken(tokenStr)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity(), nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now), jwt.WithExpirationRequired())
	if err != nil {
		// jwt checks the signature before claims, so an expiry error implies
		// the signature was valid.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", ErrTokenInvalid)
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrTokenInvalid)
	}
	return claims, nil
}

// Identity projects the claims onto the request-scoped identity.
func (c *Claims) Identity() domain.Identity {
	id := domain.Identity{UserID: c.UserID, Role: c.Role}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	if c.IssuedAt != nil {
		id.IssuedAt = c.IssuedAt.Time
	}
	return id
}
