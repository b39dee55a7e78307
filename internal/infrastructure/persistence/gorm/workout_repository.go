package gorm

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/api/internal/domain/workout"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// WorkoutRepository implements outbound.WorkoutRepository using GORM
type WorkoutRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWorkoutRepository creates a new GORM workout repository
func NewWorkoutRepository(db *gorm.DB, logger *zap.Logger) outbound.WorkoutRepository {
	return &WorkoutRepository{
		db:     db,
		logger: logger.Named("workout-repository"),
	}
}

// Create persists a new workout plan
func (r *WorkoutRepository) Create(ctx context.Context, w *workout.Workout) error {
	model := workoutToModel(w)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create workout", zap.Error(err))
		return errors.NewDatabaseError("create workout", err)
	}
	return nil
}

// Update persists changes to an existing workout plan
func (r *WorkoutRepository) Update(ctx context.Context, w *workout.Workout) error {
	model := workoutToModel(w)
	result := r.db.WithContext(ctx).Model(&WorkoutModel{}).Where("id = ?", model.ID).
		Select("*").Omit("id", "user_id", "created_at", "deleted_at").Updates(model)
	if result.Error != nil {
		r.logger.Error("failed to update workout", zap.Error(result.Error))
		return errors.NewDatabaseError("update workout", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewWorkoutNotFoundError(w.ID().String())
	}
	return nil
}

// Delete soft-deletes a workout plan
func (r *WorkoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&WorkoutModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewDatabaseError("delete workout", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewWorkoutNotFoundError(id.String())
	}
	return nil
}

// FindByID loads a workout plan by id
func (r *WorkoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*workout.Workout, error) {
	var model WorkoutModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewWorkoutNotFoundError(id.String())
		}
		return nil, errors.NewDatabaseError("find workout", err)
	}
	return modelToWorkout(&model), nil
}

// FindByUserID returns a page of the user's workouts, newest first,
// with the total count
func (r *WorkoutRepository) FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*workout.Workout, int, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&WorkoutModel{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewDatabaseError("count workouts", err)
	}

	var models []WorkoutModel
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list workouts", err)
	}

	workouts := make([]*workout.Workout, 0, len(models))
	for i := range models {
		workouts = append(workouts, modelToWorkout(&models[i]))
	}
	return workouts, int(total), nil
}
