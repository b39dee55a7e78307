// Package coach defines the structured responses produced by the
// coaching pipeline. The text-generation model is asked to emit these
// shapes as JSON; the parser coerces whatever comes back into them.
package coach

import "github.com/fitforge/api/internal/domain/fitness"

// SuggestedExercise is one movement inside a generated workout plan
type SuggestedExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

// WorkoutPlan is the structured result of a workout suggestion.
// CaloriesBurned and RecoveryHours are always overwritten with
// calculator values after parsing; model-supplied numbers for these
// fields are discarded.
type WorkoutPlan struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Exercises      []SuggestedExercise `json:"exercises"`
	FrequencyWeek  int                 `json:"frequencyPerWeek"`
	DurationMin    int                 `json:"durationMinutes"`
	Tips           []string            `json:"tips"`
	CaloriesBurned int                 `json:"caloriesBurned"`
	RecoveryHours  int                 `json:"recoveryHours"`
}

// SuggestedFood is one item inside a generated meal
type SuggestedFood struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantityGrams"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"proteinGrams"`
	CarbsGrams    float64 `json:"carbsGrams"`
	FatGrams      float64 `json:"fatGrams"`
}

// SuggestedMeal is one meal inside a generated diet plan
type SuggestedMeal struct {
	Name  string          `json:"name"`
	Time  string          `json:"time"`
	Foods []SuggestedFood `json:"foods"`
}

// CalculatedTargets carries the deterministic calorie and macro numbers
// returned side by side with the model's plan so clients can compare
type CalculatedTargets struct {
	BMR           float64              `json:"bmr"`
	TDEE          float64              `json:"tdee"`
	DailyCalories int                  `json:"dailyCalories"`
	Macros        fitness.MacroTargets `json:"macros"`
}

// DietPlan is the structured result of a diet suggestion
type DietPlan struct {
	Name          string               `json:"name"`
	Meals         []SuggestedMeal      `json:"meals"`
	DailyCalories int                  `json:"dailyCalories"`
	Macros        fitness.MacroTargets `json:"macros"`
	Tips          []string             `json:"tips"`
	Calculated    CalculatedTargets    `json:"calculated"`
}

// ProgressAnalysis is the structured result of a progress review
type ProgressAnalysis struct {
	Analysis        string   `json:"analysis"`
	Achievements    []string `json:"achievements"`
	Recommendations []string `json:"recommendations"`
	Motivation      string   `json:"motivation"`
}

// ChatAnswer is a single-turn answer from the coach. Stateless: no
// conversation history is kept server-side.
type ChatAnswer struct {
	Answer string `json:"answer"`
}

// NutritionEstimate is the structured result of a food nutrition lookup
type NutritionEstimate struct {
	Food          string  `json:"food"`
	QuantityGrams float64 `json:"quantityGrams"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"proteinGrams"`
	CarbsGrams    float64 `json:"carbsGrams"`
	FatGrams      float64 `json:"fatGrams"`
	Notes         string  `json:"notes"`
}
