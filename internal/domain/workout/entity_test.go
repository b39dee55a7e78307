package workout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/api/internal/domain/fitness"
)

func sampleExercises() []Exercise {
	return []Exercise{
		{Name: "Supino reto", MuscleGroup: "chest", Sets: 4, Reps: 10, RestSeconds: 90},
		{Name: "Crucifixo", MuscleGroup: "Chest", Sets: 3, Reps: 12, RestSeconds: 60},
		{Name: "Tríceps corda", MuscleGroup: "triceps", Sets: 3, Reps: 15, RestSeconds: 45},
	}
}

func TestNewWorkout(t *testing.T) {
	userID := uuid.New()

	t.Run("valid workout", func(t *testing.T) {
		w, err := NewWorkout(userID, "Treino A", fitness.WorkoutHypertrophy, sampleExercises(), 3, 50)
		require.NoError(t, err)

		assert.Equal(t, userID, w.UserID())
		assert.Equal(t, fitness.WorkoutHypertrophy, w.Type())
		assert.Len(t, w.Exercises(), 3)
		assert.Equal(t, 3, w.FrequencyPerWeek())
		assert.Equal(t, 50, w.DurationMinutes())
		assert.False(t, w.IsAIGenerated())
	})

	t.Run("duration defaults to an hour", func(t *testing.T) {
		w, err := NewWorkout(userID, "Treino A", fitness.WorkoutStrength, sampleExercises(), 3, 0)
		require.NoError(t, err)
		assert.Equal(t, 60, w.DurationMinutes())
	})

	tests := []struct {
		name        string
		workoutName string
		workoutType fitness.WorkoutType
		exercises   []Exercise
		frequency   int
		wantErr     error
	}{
		{"empty name", " ", fitness.WorkoutStrength, sampleExercises(), 3, ErrNameRequired},
		{"bad type", "Treino A", "yoga-fusion", sampleExercises(), 3, ErrInvalidType},
		{"no exercises", "Treino A", fitness.WorkoutStrength, nil, 3, ErrNoExercises},
		{"zero sets", "Treino A", fitness.WorkoutStrength, []Exercise{{Name: "Supino", Sets: 0, Reps: 10}}, 3, ErrInvalidSetsOrReps},
		{"frequency too low", "Treino A", fitness.WorkoutStrength, sampleExercises(), 0, ErrInvalidFrequency},
		{"frequency too high", "Treino A", fitness.WorkoutStrength, sampleExercises(), 8, ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkout(userID, tt.workoutName, tt.workoutType, tt.exercises, tt.frequency, 60)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMuscleGroups(t *testing.T) {
	w, err := NewWorkout(uuid.New(), "Treino A", fitness.WorkoutHypertrophy, sampleExercises(), 3, 50)
	require.NoError(t, err)

	assert.Equal(t, []string{"chest", "triceps"}, w.MuscleGroups(), "deduplicated, case-insensitive, first-seen order")
}

func TestProgress(t *testing.T) {
	w, err := NewWorkout(uuid.New(), "Treino A", fitness.WorkoutHypertrophy, sampleExercises(), 3, 50)
	require.NoError(t, err)

	assert.Equal(t, 0, w.Progress())

	require.NoError(t, w.CompleteExercise("supino reto"))
	assert.Equal(t, 33, w.Progress())

	require.NoError(t, w.CompleteExercise("Crucifixo"))
	require.NoError(t, w.CompleteExercise("Tríceps corda"))
	assert.Equal(t, 100, w.Progress())

	w.ResetProgress()
	assert.Equal(t, 0, w.Progress())

	assert.ErrorIs(t, w.CompleteExercise("Agachamento"), ErrExerciseNotFound)
}

func TestAttachMetrics(t *testing.T) {
	w, err := NewWorkout(uuid.New(), "Treino A", fitness.WorkoutCardio, sampleExercises(), 3, 60)
	require.NoError(t, err)

	w.AttachMetrics(480, 48)
	assert.Equal(t, 480, w.CaloriesBurned())
	assert.Equal(t, 48, w.RecoveryHours())

	w.MarkAIGenerated()
	assert.True(t, w.IsAIGenerated())
}
