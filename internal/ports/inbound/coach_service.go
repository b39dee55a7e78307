// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/coach"
)

// SuggestWorkoutCommand carries the caller's preferences for a
// generated workout plan. Zero values mean "let the coach decide":
// absent fields fall back to the profile (goal, difficulty) or to the
// documented defaults (general focus, 60 minutes).
type SuggestWorkoutCommand struct {
	Goal             string   `json:"goal"`
	WorkoutType      string   `json:"workoutType"`
	FocusMuscles     []string `json:"focusMuscles"`
	Difficulty       string   `json:"difficulty"`
	DurationMinutes  int      `json:"durationMinutes"`
	FrequencyPerWeek int      `json:"frequencyPerWeek"`
	Save             bool     `json:"save"`
}

// SuggestDietCommand carries the caller's preferences for a generated
// diet plan. TargetCalories, when set, must fall inside the accepted
// range and overrides the calculated daily needs.
type SuggestDietCommand struct {
	DietType       string   `json:"type"`
	TargetCalories *int     `json:"targetCalories"`
	MealsPerDay    int      `json:"mealsPerDay"`
	Restrictions   []string `json:"restrictions"`
	Save           bool     `json:"save"`
}

// ChatCommand is a single free-form question. Context optionally
// carries prior conversation as a text blob supplied by the caller;
// the service itself keeps no session state.
type ChatCommand struct {
	Question string `json:"question" validate:"required,max=500"`
	Context  string `json:"context" validate:"max=2000"`
}

// EstimateNutritionCommand asks for a macro estimate of a food portion
type EstimateNutritionCommand struct {
	Food          string  `json:"food"`
	QuantityGrams float64 `json:"quantityGrams"`
}

// CoachService is the AI coaching pipeline. Every operation loads the
// user's profile, derives deterministic metrics, builds a prompt, calls
// the inference endpoint and parses the result into a structured
// response. Metric numbers in responses always come from the
// calculators, not from model output.
type CoachService interface {
	SuggestWorkout(ctx context.Context, userID uuid.UUID, cmd SuggestWorkoutCommand) (*coach.WorkoutPlan, error)
	SuggestDiet(ctx context.Context, userID uuid.UUID, cmd SuggestDietCommand) (*coach.DietPlan, error)
	// AnalyzeProgress returns a fixed insufficient-data response without
	// calling inference when the user has no progress records.
	AnalyzeProgress(ctx context.Context, userID uuid.UUID) (*coach.ProgressAnalysis, error)
	// Chat answers a single free-form question. Stateless: no
	// conversation history is kept between calls.
	Chat(ctx context.Context, userID uuid.UUID, cmd ChatCommand) (*coach.ChatAnswer, error)
	EstimateNutrition(ctx context.Context, userID uuid.UUID, cmd EstimateNutritionCommand) (*coach.NutritionEstimate, error)
}
