package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// AuthService implements inbound.AuthService
type AuthService struct {
	users  outbound.UserRepository
	tokens outbound.TokenManager
	logger *zap.Logger
}

// NewAuthService creates the authentication service
func NewAuthService(users outbound.UserRepository, tokens outbound.TokenManager, logger *zap.Logger) inbound.AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account
func (s *AuthService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*user.User, error) {
	if existing, err := s.users.FindByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	u, err := user.NewUser(cmd.Email, cmd.Name, cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID().String()),
		zap.String("email", u.Email()))

	return u, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.TokenPair, error) {
	u, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		// identical failure for unknown email and wrong password
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("Account is deactivated")
	}
	if err := u.CheckPassword(cmd.Password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	pair, err := s.issuePair(ctx, u)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID()); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair, revoking
// the old one so each refresh token works exactly once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*inbound.TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("Account is deactivated")
	}

	if err := s.tokens.RevokeRefreshToken(ctx, claims.TokenID); err != nil {
		s.logger.Warn("failed to revoke rotated refresh token", zap.Error(err))
	}

	return s.issuePair(ctx, u)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		// already invalid or expired, nothing to revoke
		return nil
	}
	if claims.UserID != userID.String() {
		return errors.NewForbiddenError("Token does not belong to this user")
	}
	return s.tokens.RevokeRefreshToken(ctx, claims.TokenID)
}

func (s *AuthService) issuePair(ctx context.Context, u *user.User) (*inbound.TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(ctx, u.ID().String(), u.Email(), string(u.Role()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refresh, err := s.tokens.GenerateRefreshToken(ctx, u.ID().String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &inbound.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}
