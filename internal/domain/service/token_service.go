package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks access tokens in the "type" claim.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a bearer token for the user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies a token, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL() time.Duration
}
