// Package workout defines the workout plan domain entity
package workout

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/fitness"
)

// Domain errors for workout operations
var (
	ErrNameRequired      = errors.New("workout name is required")
	ErrInvalidType       = errors.New("invalid workout type")
	ErrNoExercises       = errors.New("workout must have at least one exercise")
	ErrInvalidFrequency  = errors.New("frequency must be between 1 and 7 days per week")
	ErrExerciseNotFound  = errors.New("exercise not found in workout")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrNotWorkoutOwner   = errors.New("only the workout owner can perform this action")
	ErrInvalidSetsOrReps = errors.New("sets and reps must be greater than 0")
)

// Exercise is a single prescribed movement inside a workout plan
type Exercise struct {
	Name        string
	MuscleGroup string
	Sets        int
	Reps        int
	RestSeconds int
	Notes       string
	Completed   bool
}

// Workout is a training plan owned by a user, either hand-built or
// produced by the coaching service
type Workout struct {
	id              uuid.UUID
	userID          uuid.UUID
	name            string
	workoutType     fitness.WorkoutType
	description     string
	exercises       []Exercise
	frequencyPerWk  int
	durationMinutes int
	caloriesBurned  int
	recoveryHours   int
	aiGenerated     bool
	createdAt       time.Time
	updatedAt       time.Time
}

func validatePlan(name string, workoutType fitness.WorkoutType, exercises []Exercise, frequencyPerWeek int) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	switch workoutType {
	case fitness.WorkoutStrength, fitness.WorkoutHypertrophy, fitness.WorkoutEndurance,
		fitness.WorkoutCardio, fitness.WorkoutFlexibility, fitness.WorkoutFunctional:
	default:
		return ErrInvalidType
	}
	if len(exercises) == 0 {
		return ErrNoExercises
	}
	for _, ex := range exercises {
		if ex.Sets <= 0 || ex.Reps <= 0 {
			return ErrInvalidSetsOrReps
		}
	}
	if frequencyPerWeek < 1 || frequencyPerWeek > 7 {
		return ErrInvalidFrequency
	}
	return nil
}

// NewWorkout creates a workout plan with validation
func NewWorkout(userID uuid.UUID, name string, workoutType fitness.WorkoutType, exercises []Exercise, frequencyPerWeek, durationMinutes int) (*Workout, error) {
	name = strings.TrimSpace(name)
	if err := validatePlan(name, workoutType, exercises, frequencyPerWeek); err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		durationMinutes = 60
	}

	now := time.Now()
	return &Workout{
		id:              uuid.New(),
		userID:          userID,
		name:            name,
		workoutType:     workoutType,
		exercises:       exercises,
		frequencyPerWk:  frequencyPerWeek,
		durationMinutes: durationMinutes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a workout from persisted state without validation
func Reconstruct(
	id, userID uuid.UUID,
	name string,
	workoutType fitness.WorkoutType,
	description string,
	exercises []Exercise,
	frequencyPerWeek, durationMinutes, caloriesBurned, recoveryHours int,
	aiGenerated bool,
	createdAt, updatedAt time.Time,
) *Workout {
	return &Workout{
		id:              id,
		userID:          userID,
		name:            name,
		workoutType:     workoutType,
		description:     description,
		exercises:       exercises,
		frequencyPerWk:  frequencyPerWeek,
		durationMinutes: durationMinutes,
		caloriesBurned:  caloriesBurned,
		recoveryHours:   recoveryHours,
		aiGenerated:     aiGenerated,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (w *Workout) ID() uuid.UUID                    { return w.id }
func (w *Workout) UserID() uuid.UUID                { return w.userID }
func (w *Workout) Name() string                     { return w.name }
func (w *Workout) Type() fitness.WorkoutType        { return w.workoutType }
func (w *Workout) Description() string              { return w.description }
func (w *Workout) Exercises() []Exercise            { return w.exercises }
func (w *Workout) FrequencyPerWeek() int            { return w.frequencyPerWk }
func (w *Workout) DurationMinutes() int             { return w.durationMinutes }
func (w *Workout) CaloriesBurned() int              { return w.caloriesBurned }
func (w *Workout) RecoveryHours() int               { return w.recoveryHours }
func (w *Workout) IsAIGenerated() bool              { return w.aiGenerated }
func (w *Workout) CreatedAt() time.Time             { return w.createdAt }
func (w *Workout) UpdatedAt() time.Time             { return w.updatedAt }

// UpdatePlan replaces the plan definition. Completion state and
// attached metrics are discarded; callers recompute metrics after a
// successful update.
func (w *Workout) UpdatePlan(name string, workoutType fitness.WorkoutType, exercises []Exercise, frequencyPerWeek, durationMinutes int) error {
	name = strings.TrimSpace(name)
	if err := validatePlan(name, workoutType, exercises, frequencyPerWeek); err != nil {
		return err
	}
	if durationMinutes <= 0 {
		durationMinutes = 60
	}

	w.name = name
	w.workoutType = workoutType
	w.exercises = exercises
	w.frequencyPerWk = frequencyPerWeek
	w.durationMinutes = durationMinutes
	w.caloriesBurned = 0
	w.recoveryHours = 0
	w.updatedAt = time.Now()
	return nil
}

// SetDescription attaches free-form coaching notes
func (w *Workout) SetDescription(description string) {
	w.description = description
	w.updatedAt = time.Now()
}

// MarkAIGenerated flags the plan as machine-produced
func (w *Workout) MarkAIGenerated() {
	w.aiGenerated = true
	w.updatedAt = time.Now()
}

// AttachMetrics stores the estimated energy cost and recovery window.
// These always come from the calculators, never from model output.
func (w *Workout) AttachMetrics(caloriesBurned, recoveryHours int) {
	w.caloriesBurned = caloriesBurned
	w.recoveryHours = recoveryHours
	w.updatedAt = time.Now()
}

// MuscleGroups returns the distinct muscle groups this plan trains,
// in first-seen order
func (w *Workout) MuscleGroups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, ex := range w.exercises {
		group := strings.ToLower(strings.TrimSpace(ex.MuscleGroup))
		if group == "" || seen[group] {
			continue
		}
		seen[group] = true
		groups = append(groups, group)
	}
	return groups
}

// CompleteExercise marks the named exercise as done
func (w *Workout) CompleteExercise(name string) error {
	for i := range w.exercises {
		if strings.EqualFold(w.exercises[i].Name, name) {
			w.exercises[i].Completed = true
			w.updatedAt = time.Now()
			return nil
		}
	}
	return ErrExerciseNotFound
}

// Progress returns the completed fraction of the plan as a percentage,
// rounded down
func (w *Workout) Progress() int {
	if len(w.exercises) == 0 {
		return 0
	}
	completed := 0
	for _, ex := range w.exercises {
		if ex.Completed {
			completed++
		}
	}
	return completed * 100 / len(w.exercises)
}

// ResetProgress clears completion marks for a new training cycle
func (w *Workout) ResetProgress() {
	for i := range w.exercises {
		w.exercises[i].Completed = false
	}
	w.updatedAt = time.Now()
}
