// Package security provides JWT issuance, validation and revocation
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/ports/outbound"
)

// TokenType distinguishes access from refresh tokens
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const revokedKeyPrefix = "revoked_token:"

// Claims is the JWT claims structure for both token types
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates HS256 JWTs. Refresh tokens can be
// revoked; revocations live in redis until the token would have
// expired anyway.
type TokenManager struct {
	cfg    *config.Config
	logger *zap.Logger
	redis  *redis.Client
	secret []byte
}

// NewTokenManager creates a token manager backed by redis for
// revocation tracking
func NewTokenManager(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) outbound.TokenManager {
	return &TokenManager{
		cfg:    cfg,
		logger: logger.Named("token-manager"),
		redis:  redisClient,
		secret: []byte(cfg.Auth.JWTSecret),
	}
}

// GenerateAccessToken creates a short-lived access token
func (m *TokenManager) GenerateAccessToken(ctx context.Context, userID, email, role string) (string, error) {
	return m.sign(userID, email, role, AccessToken, m.cfg.Auth.JWTExpiration)
}

// GenerateRefreshToken creates a long-lived refresh token
func (m *TokenManager) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	return m.sign(userID, "", "", RefreshToken, m.cfg.Auth.RefreshExpiration)
}

// ValidateAccessToken parses and checks an access token
func (m *TokenManager) ValidateAccessToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	return m.validate(ctx, token, AccessToken)
}

// ValidateRefreshToken parses and checks a refresh token, including
// its revocation status
func (m *TokenManager) ValidateRefreshToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	return m.validate(ctx, token, RefreshToken)
}

// RevokeRefreshToken marks a refresh token id as revoked
func (m *TokenManager) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	key := revokedKeyPrefix + tokenID
	return m.redis.Set(ctx, key, "revoked", m.cfg.Auth.RefreshExpiration).Err()
}

// AccessTokenTTL returns the configured access token lifetime
func (m *TokenManager) AccessTokenTTL() time.Duration {
	return m.cfg.Auth.JWTExpiration
}

func (m *TokenManager) sign(userID, email, role string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Auth.Issuer,
			Subject:   userID,
			Audience:  []string{m.cfg.Auth.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (m *TokenManager) validate(ctx context.Context, tokenString string, expectedType TokenType) (*outbound.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.cfg.Auth.Issuer),
		jwt.WithAudience(m.cfg.Auth.Audience),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedType, claims.TokenType)
	}

	if expectedType == RefreshToken {
		revoked, err := m.isRevoked(ctx, claims.ID)
		if err != nil {
			m.logger.Warn("failed to check token revocation", zap.Error(err))
		} else if revoked {
			return nil, fmt.Errorf("token has been revoked")
		}
	}

	return &outbound.TokenClaims{
		TokenID: claims.ID,
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
	}, nil
}

func (m *TokenManager) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := m.redis.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	return exists > 0, err
}
