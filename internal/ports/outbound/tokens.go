package outbound

import (
	"context"
	"time"
)

// TokenClaims is the identity carried by a validated token
type TokenClaims struct {
	TokenID string
	UserID  string
	Email   string
	Role    string
}

// TokenManager issues and validates the access/refresh token pair.
// Refresh tokens are revocable; access tokens expire on their own.
type TokenManager interface {
	GenerateAccessToken(ctx context.Context, userID, email, role string) (string, error)
	GenerateRefreshToken(ctx context.Context, userID string) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	RevokeRefreshToken(ctx context.Context, tokenID string) error
	AccessTokenTTL() time.Duration
}
