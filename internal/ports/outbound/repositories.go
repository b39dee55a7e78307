// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/domain/workout"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	Update(ctx context.Context, user *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// WorkoutRepository defines the interface for workout plan persistence
type WorkoutRepository interface {
	Create(ctx context.Context, w *workout.Workout) error
	Update(ctx context.Context, w *workout.Workout) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*workout.Workout, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*workout.Workout, int, error)
}

// DietRepository defines the interface for diet plan persistence
type DietRepository interface {
	Create(ctx context.Context, d *diet.Diet) error
	Update(ctx context.Context, d *diet.Diet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*diet.Diet, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*diet.Diet, int, error)
}

// ProgressRepository defines the interface for progress record persistence
type ProgressRepository interface {
	Create(ctx context.Context, r *progress.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*progress.Record, error)
	// FindByUserID returns records ordered from newest to oldest.
	FindByUserID(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*progress.Record, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	DeletePattern(ctx context.Context, pattern string) error
}
