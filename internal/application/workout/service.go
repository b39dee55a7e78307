// Package workout contains the workout plan application service
package workout

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/workout"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service implements inbound.WorkoutService
type Service struct {
	workouts outbound.WorkoutRepository
	users    outbound.UserRepository
	logger   *zap.Logger
}

// NewService creates the workout service
func NewService(workouts outbound.WorkoutRepository, users outbound.UserRepository, logger *zap.Logger) inbound.WorkoutService {
	return &Service{
		workouts: workouts,
		users:    users,
		logger:   logger,
	}
}

// Create builds a hand-made workout plan. Calorie and recovery figures
// are attached from the calculators when the user has a profile.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, cmd inbound.CreateWorkoutCommand) (*workout.Workout, error) {
	exercises := make([]workout.Exercise, 0, len(cmd.Exercises))
	for _, e := range cmd.Exercises {
		exercises = append(exercises, workout.Exercise{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Notes:       e.Notes,
		})
	}

	w, err := workout.NewWorkout(userID, cmd.Name, fitness.WorkoutType(cmd.Type), exercises, cmd.FrequencyPerWeek, cmd.DurationMinutes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Description != "" {
		w.SetDescription(cmd.Description)
	}

	s.attachMetrics(ctx, w)

	if err := s.workouts.Create(ctx, w); err != nil {
		return nil, errors.NewDatabaseError("create workout", err)
	}

	s.logger.Info("workout created",
		zap.String("workout_id", w.ID().String()),
		zap.String("user_id", userID.String()))

	return w, nil
}

// GetByID loads a workout owned by the user
func (s *Service) GetByID(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error) {
	return s.ownedWorkout(ctx, userID, workoutID)
}

// List returns the user's workouts with the total count
func (s *Service) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*workout.Workout, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.workouts.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list workouts", err)
	}
	return items, total, nil
}

// Update replaces the plan definition of a workout owned by the user.
// Completion state is discarded and metrics are recomputed.
func (s *Service) Update(ctx context.Context, userID, workoutID uuid.UUID, cmd inbound.CreateWorkoutCommand) (*workout.Workout, error) {
	w, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	exercises := make([]workout.Exercise, 0, len(cmd.Exercises))
	for _, e := range cmd.Exercises {
		exercises = append(exercises, workout.Exercise{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Notes:       e.Notes,
		})
	}

	if err := w.UpdatePlan(cmd.Name, fitness.WorkoutType(cmd.Type), exercises, cmd.FrequencyPerWeek, cmd.DurationMinutes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Description != "" {
		w.SetDescription(cmd.Description)
	}

	s.attachMetrics(ctx, w)

	if err := s.workouts.Update(ctx, w); err != nil {
		return nil, errors.NewDatabaseError("update workout", err)
	}
	return w, nil
}

// EstimateMetrics runs the calorie and recovery calculators for a
// workout definition without persisting anything. Requires a profile.
func (s *Service) EstimateMetrics(ctx context.Context, userID uuid.UUID, cmd inbound.EstimateWorkoutCommand) (*inbound.WorkoutEstimate, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}
	profile := u.Profile()
	if profile == nil {
		return nil, errors.NewProfileNotFoundError(userID.String())
	}

	workoutType := fitness.WorkoutType(cmd.Type)
	duration := cmd.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	return &inbound.WorkoutEstimate{
		CaloriesBurned: fitness.CaloriesBurned(workoutType, duration, profile.ExperienceLevel, profile.WeightKg),
		RecoveryHours:  fitness.RecoveryHours(cmd.MuscleGroups, profile.ExperienceLevel, profile.Age),
	}, nil
}

// CompleteExercise marks one exercise of the workout as done
func (s *Service) CompleteExercise(ctx context.Context, userID, workoutID uuid.UUID, exerciseName string) (*workout.Workout, error) {
	w, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if err := w.CompleteExercise(exerciseName); err != nil {
		return nil, errors.NewInvalidParametersError(err.Error())
	}

	if err := s.workouts.Update(ctx, w); err != nil {
		return nil, errors.NewDatabaseError("update workout", err)
	}
	return w, nil
}

// ResetProgress clears all completion flags on the workout
func (s *Service) ResetProgress(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error) {
	w, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	w.ResetProgress()
	if err := s.workouts.Update(ctx, w); err != nil {
		return nil, errors.NewDatabaseError("update workout", err)
	}
	return w, nil
}

// Delete removes a workout owned by the user
func (s *Service) Delete(ctx context.Context, userID, workoutID uuid.UUID) error {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return err
	}

	if err := s.workouts.Delete(ctx, workoutID); err != nil {
		return errors.NewDatabaseError("delete workout", err)
	}

	s.logger.Info("workout deleted",
		zap.String("workout_id", workoutID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// ownedWorkout loads a workout and hides it behind not-found when it
// belongs to someone else.
func (s *Service) ownedWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error) {
	w, err := s.workouts.FindByID(ctx, workoutID)
	if err != nil {
		return nil, errors.NewWorkoutNotFoundError(workoutID.String())
	}
	if w.UserID() != userID {
		return nil, errors.NewWorkoutNotFoundError(workoutID.String())
	}
	return w, nil
}

func (s *Service) attachMetrics(ctx context.Context, w *workout.Workout) {
	u, err := s.users.FindByID(ctx, w.UserID())
	if err != nil || u.Profile() == nil {
		return
	}
	profile := u.Profile()
	burned := fitness.CaloriesBurned(w.Type(), w.DurationMinutes(), profile.ExperienceLevel, profile.WeightKg)
	recovery := fitness.RecoveryHours(w.MuscleGroups(), profile.ExperienceLevel, profile.Age)
	w.AttachMetrics(burned, recovery)
}
