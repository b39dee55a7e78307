package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/workout"
)

// ExerciseInput is one exercise in a workout create/update request
type ExerciseInput struct {
	Name        string `json:"name" validate:"required"`
	MuscleGroup string `json:"muscleGroup" validate:"required"`
	Sets        int    `json:"sets" validate:"required,min=1"`
	Reps        int    `json:"reps" validate:"required,min=1"`
	RestSeconds int    `json:"restSeconds" validate:"min=0"`
	Notes       string `json:"notes"`
}

// CreateWorkoutCommand creates a hand-built workout plan
type CreateWorkoutCommand struct {
	Name             string          `json:"name" validate:"required"`
	Type             string          `json:"type" validate:"required"`
	Description      string          `json:"description"`
	Exercises        []ExerciseInput `json:"exercises" validate:"required,min=1,dive"`
	FrequencyPerWeek int             `json:"frequencyPerWeek" validate:"required,min=1,max=7"`
	DurationMinutes  int             `json:"durationMinutes"`
}

// EstimateWorkoutCommand asks for calorie and recovery estimates of a
// workout definition without persisting it
type EstimateWorkoutCommand struct {
	Type            string   `json:"type" validate:"required"`
	DurationMinutes int      `json:"durationMinutes"`
	MuscleGroups    []string `json:"muscleGroups" validate:"required,min=1"`
}

// WorkoutEstimate is the calculator output for an estimate request
type WorkoutEstimate struct {
	CaloriesBurned int `json:"caloriesBurned"`
	RecoveryHours  int `json:"recoveryHours"`
}

// WorkoutService handles workout plan CRUD and completion tracking
type WorkoutService interface {
	Create(ctx context.Context, userID uuid.UUID, cmd CreateWorkoutCommand) (*workout.Workout, error)
	GetByID(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*workout.Workout, int, error)
	Update(ctx context.Context, userID, workoutID uuid.UUID, cmd CreateWorkoutCommand) (*workout.Workout, error)
	CompleteExercise(ctx context.Context, userID, workoutID uuid.UUID, exerciseName string) (*workout.Workout, error)
	ResetProgress(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error)
	Delete(ctx context.Context, userID, workoutID uuid.UUID) error
	// EstimateMetrics runs the calculators against the caller's profile
	// without creating a workout.
	EstimateMetrics(ctx context.Context, userID uuid.UUID, cmd EstimateWorkoutCommand) (*WorkoutEstimate, error)
}

// FoodInput is one food item in a diet create request
type FoodInput struct {
	Name          string  `json:"name" validate:"required"`
	QuantityGrams float64 `json:"quantityGrams" validate:"min=0"`
	Calories      float64 `json:"calories" validate:"min=0"`
	ProteinGrams  float64 `json:"proteinGrams" validate:"min=0"`
	CarbsGrams    float64 `json:"carbsGrams" validate:"min=0"`
	FatGrams      float64 `json:"fatGrams" validate:"min=0"`
}

// MealInput is one meal in a diet create request
type MealInput struct {
	Name  string      `json:"name" validate:"required"`
	Type  string      `json:"type" validate:"required"`
	Time  string      `json:"time" validate:"required"`
	Foods []FoodInput `json:"foods" validate:"dive"`
}

// CreateDietCommand creates a hand-built diet plan
type CreateDietCommand struct {
	Name          string      `json:"name" validate:"required"`
	Goal          string      `json:"goal"`
	DailyCalories int         `json:"dailyCalories" validate:"required,min=800,max=5000"`
	Meals         []MealInput `json:"meals" validate:"required,min=1,dive"`
}

// DietService handles diet plan CRUD and consumption tracking
type DietService interface {
	Create(ctx context.Context, userID uuid.UUID, cmd CreateDietCommand) (*diet.Diet, error)
	GetByID(ctx context.Context, userID, dietID uuid.UUID) (*diet.Diet, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*diet.Diet, int, error)
	Update(ctx context.Context, userID, dietID uuid.UUID, cmd CreateDietCommand) (*diet.Diet, error)
	ConsumeMeal(ctx context.Context, userID, dietID uuid.UUID, mealName string) (*diet.Diet, error)
	ResetConsumption(ctx context.Context, userID, dietID uuid.UUID) (*diet.Diet, error)
	Delete(ctx context.Context, userID, dietID uuid.UUID) error
}

// RecordProgressCommand logs a dated body measurement entry
type RecordProgressCommand struct {
	Date           time.Time `json:"date"`
	WeightKg       float64   `json:"weightKg" validate:"required,min=30,max=300"`
	BodyFatPercent *float64  `json:"bodyFatPercent" validate:"omitempty,min=1,max=70"`
	WaistCm        *float64  `json:"waistCm"`
	ChestCm        *float64  `json:"chestCm"`
	HipsCm         *float64  `json:"hipsCm"`
	ArmCm          *float64  `json:"armCm"`
	ThighCm        *float64  `json:"thighCm"`
	WorkoutsDone   int       `json:"workoutsDone" validate:"min=0"`
	Notes          string    `json:"notes"`
}

// ProgressService handles body measurement logging and trend queries
type ProgressService interface {
	Record(ctx context.Context, userID uuid.UUID, cmd RecordProgressCommand) (*progress.Record, error)
	List(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*progress.Record, error)
	Trend(ctx context.Context, userID uuid.UUID, since time.Time) (*progress.Trend, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}
