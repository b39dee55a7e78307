package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/user"
)

// RegisterCommand creates a new account
type RegisterCommand struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginCommand authenticates an existing account
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is an access/refresh token pair issued on login
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// UpdateProfileCommand replaces the user's fitness profile
type UpdateProfileCommand struct {
	Age             int     `json:"age" validate:"required,min=16,max=100"`
	Gender          string  `json:"gender" validate:"required,oneof=male female other"`
	HeightCm        float64 `json:"heightCm" validate:"required,min=100,max=250"`
	WeightKg        float64 `json:"weightKg" validate:"required,min=30,max=300"`
	Goal            string  `json:"goal" validate:"required"`
	ActivityLevel   string  `json:"activityLevel" validate:"required"`
	ExperienceLevel string  `json:"experienceLevel" validate:"required"`
	Locale          string  `json:"locale"`
}

// MetricsSummary is the deterministic health snapshot derived from a
// profile
type MetricsSummary struct {
	BMI           *float64             `json:"bmi"`
	BMICategory   string               `json:"bmiCategory,omitempty"`
	BMR           float64              `json:"bmr"`
	TDEE          float64              `json:"tdee"`
	DailyCalories int                  `json:"dailyCalories"`
	Macros        fitness.MacroTargets `json:"macros"`
}

// AuthService handles registration and token lifecycle
type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*user.User, error)
	Login(ctx context.Context, cmd LoginCommand) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
}

// UserService handles account and fitness profile operations
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, cmd UpdateProfileCommand) (*user.User, error)
	Metrics(ctx context.Context, id uuid.UUID) (*MetricsSummary, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
