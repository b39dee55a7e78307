// Package user contains the account and profile application services
package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// Service implements inbound.UserService
type Service struct {
	users  outbound.UserRepository
	logger *zap.Logger
}

// NewService creates the user service
func NewService(users outbound.UserRepository, logger *zap.Logger) inbound.UserService {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// GetByID loads a user by id
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewUserNotFoundError(id.String())
	}
	return u, nil
}

// UpdateProfile validates and replaces the user's fitness profile
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, cmd inbound.UpdateProfileCommand) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewUserNotFoundError(id.String())
	}

	profile := user.Profile{
		Age:             cmd.Age,
		Gender:          fitness.Gender(cmd.Gender),
		HeightCm:        cmd.HeightCm,
		WeightKg:        cmd.WeightKg,
		Goal:            fitness.Goal(cmd.Goal),
		ActivityLevel:   fitness.ActivityLevel(cmd.ActivityLevel),
		ExperienceLevel: fitness.ExperienceLevel(cmd.ExperienceLevel),
		Locale:          fitness.Locale(cmd.Locale),
	}

	if err := u.UpdateProfile(profile); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("profile updated", zap.String("user_id", id.String()))
	return u, nil
}

// Metrics returns the deterministic health snapshot for the user's
// profile. It never calls the model.
func (s *Service) Metrics(ctx context.Context, id uuid.UUID) (*inbound.MetricsSummary, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewUserNotFoundError(id.String())
	}

	profile := u.Profile()
	if profile == nil {
		return nil, errors.NewProfileNotFoundError(id.String())
	}

	tdee := fitness.TDEE(profile.BMR(), profile.ActivityLevel)
	return &inbound.MetricsSummary{
		BMI:           profile.BMI(),
		BMICategory:   string(profile.BMICategory()),
		BMR:           profile.BMR(),
		TDEE:          tdee,
		DailyCalories: profile.DailyCalorieNeeds(),
		Macros:        profile.MacroTargets(),
	}, nil
}

// Deactivate disables the account
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return errors.NewUserNotFoundError(id.String())
	}

	u.Deactivate()
	if err := s.users.Update(ctx, u); err != nil {
		return errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("user deactivated", zap.String("user_id", id.String()))
	return nil
}
