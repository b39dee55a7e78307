// Package handlers provides the gin HTTP handlers for the REST API
package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/domain/workout"
)

// UserResponse is the wire representation of an account
type UserResponse struct {
	ID          uuid.UUID        `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	Profile     *ProfileResponse `json:"profile,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	LastLoginAt *time.Time       `json:"lastLoginAt,omitempty"`
}

// ProfileResponse is the wire representation of a fitness profile
type ProfileResponse struct {
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	HeightCm        float64 `json:"heightCm"`
	WeightKg        float64 `json:"weightKg"`
	Goal            string  `json:"goal"`
	ActivityLevel   string  `json:"activityLevel"`
	ExperienceLevel string  `json:"experienceLevel"`
	Locale          string  `json:"locale"`
}

func toUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		Name:        u.Name(),
		Role:        string(u.Role()),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
	if p := u.Profile(); p != nil {
		resp.Profile = &ProfileResponse{
			Age:             p.Age,
			Gender:          string(p.Gender),
			HeightCm:        p.HeightCm,
			WeightKg:        p.WeightKg,
			Goal:            string(p.Goal),
			ActivityLevel:   string(p.ActivityLevel),
			ExperienceLevel: string(p.ExperienceLevel),
			Locale:          string(p.Locale),
		}
	}
	return resp
}

// ExerciseResponse is one exercise in a workout response
type ExerciseResponse struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes,omitempty"`
	Completed   bool   `json:"completed"`
}

// WorkoutResponse is the wire representation of a workout plan
type WorkoutResponse struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Exercises        []ExerciseResponse `json:"exercises"`
	FrequencyPerWeek int                `json:"frequencyPerWeek"`
	DurationMinutes  int                `json:"durationMinutes"`
	CaloriesBurned   int                `json:"caloriesBurned"`
	RecoveryHours    int                `json:"recoveryHours"`
	Progress         int                `json:"progress"`
	AIGenerated      bool               `json:"aiGenerated"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func toWorkoutResponse(w *workout.Workout) WorkoutResponse {
	exercises := make([]ExerciseResponse, 0, len(w.Exercises()))
	for _, e := range w.Exercises() {
		exercises = append(exercises, ExerciseResponse{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Notes:       e.Notes,
			Completed:   e.Completed,
		})
	}
	return WorkoutResponse{
		ID:               w.ID(),
		Name:             w.Name(),
		Type:             string(w.Type()),
		Description:      w.Description(),
		Exercises:        exercises,
		FrequencyPerWeek: w.FrequencyPerWeek(),
		DurationMinutes:  w.DurationMinutes(),
		CaloriesBurned:   w.CaloriesBurned(),
		RecoveryHours:    w.RecoveryHours(),
		Progress:         w.Progress(),
		AIGenerated:      w.IsAIGenerated(),
		CreatedAt:        w.CreatedAt(),
	}
}

// FoodResponse is one food item in a meal response
type FoodResponse struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantityGrams"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"proteinGrams"`
	CarbsGrams    float64 `json:"carbsGrams"`
	FatGrams      float64 `json:"fatGrams"`
}

// MealResponse is one meal in a diet response
type MealResponse struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Time     string         `json:"time"`
	Foods    []FoodResponse `json:"foods"`
	Calories float64        `json:"calories"`
	Consumed bool           `json:"consumed"`
}

// MacrosResponse is a macro target breakdown in grams
type MacrosResponse struct {
	ProteinGrams int `json:"proteinGrams"`
	CarbsGrams   int `json:"carbsGrams"`
	FatGrams     int `json:"fatGrams"`
}

// DietResponse is the wire representation of a diet plan
type DietResponse struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Goal             string         `json:"goal,omitempty"`
	DailyCalories    int            `json:"dailyCalories"`
	Macros           MacrosResponse `json:"macros"`
	Meals            []MealResponse `json:"meals"`
	ConsumedCalories float64        `json:"consumedCalories"`
	AIGenerated      bool           `json:"aiGenerated"`
	CreatedAt        time.Time      `json:"createdAt"`
}

func toDietResponse(d *diet.Diet) DietResponse {
	meals := make([]MealResponse, 0, len(d.Meals()))
	for _, meal := range d.Meals() {
		foods := make([]FoodResponse, 0, len(meal.Foods))
		for _, f := range meal.Foods {
			foods = append(foods, FoodResponse{
				Name:          f.Name,
				QuantityGrams: f.QuantityGrams,
				Calories:      f.Calories,
				ProteinGrams:  f.ProteinGrams,
				CarbsGrams:    f.CarbsGrams,
				FatGrams:      f.FatGrams,
			})
		}
		meals = append(meals, MealResponse{
			Name:     meal.Name,
			Type:     string(meal.Type),
			Time:     meal.Time,
			Foods:    foods,
			Calories: meal.Calories(),
			Consumed: meal.Consumed,
		})
	}

	macros := d.Macros()
	return DietResponse{
		ID:            d.ID(),
		Name:          d.Name(),
		Goal:          string(d.Goal()),
		DailyCalories: d.DailyCalories(),
		Macros: MacrosResponse{
			ProteinGrams: macros.ProteinGrams,
			CarbsGrams:   macros.CarbsGrams,
			FatGrams:     macros.FatGrams,
		},
		Meals:            meals,
		ConsumedCalories: d.ConsumedCalories(),
		AIGenerated:      d.IsAIGenerated(),
		CreatedAt:        d.CreatedAt(),
	}
}

// ProgressResponse is the wire representation of a measurement record
type ProgressResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           time.Time `json:"date"`
	WeightKg       float64   `json:"weightKg"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	ChestCm        *float64  `json:"chestCm,omitempty"`
	HipsCm         *float64  `json:"hipsCm,omitempty"`
	ArmCm          *float64  `json:"armCm,omitempty"`
	ThighCm        *float64  `json:"thighCm,omitempty"`
	WorkoutsDone   int       `json:"workoutsDone"`
	Notes          string    `json:"notes,omitempty"`
}

func toProgressResponse(r *progress.Record) ProgressResponse {
	m := r.Measurements()
	return ProgressResponse{
		ID:             r.ID(),
		Date:           r.Date(),
		WeightKg:       r.WeightKg(),
		BodyFatPercent: r.BodyFatPercent(),
		WaistCm:        m.WaistCm,
		ChestCm:        m.ChestCm,
		HipsCm:         m.HipsCm,
		ArmCm:          m.ArmCm,
		ThighCm:        m.ThighCm,
		WorkoutsDone:   r.WorkoutsDone(),
		Notes:          r.Notes(),
	}
}

// PageResponse wraps a list with pagination totals
type PageResponse struct {
	Items  interface{} `json:"items"`
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}
