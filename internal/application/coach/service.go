// Package coach implements the AI coaching pipeline: load profile,
// derive metrics, build prompt, call inference, parse, attach
// calculator numbers, respond.
package coach

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/coach"
	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/domain/workout"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

const (
	minTargetCalories = 800
	maxTargetCalories = 5000

	// progress prompts look back this far by default
	progressWindow = 90 * 24 * time.Hour
	maxHistory     = 30

	// how many recent plans the suggestion prompts summarize
	workoutHistoryLimit = 5
	dietHistoryLimit    = 3
)

// Service implements inbound.CoachService
type Service struct {
	users     outbound.UserRepository
	workouts  outbound.WorkoutRepository
	diets     outbound.DietRepository
	progress  outbound.ProgressRepository
	inference outbound.InferenceClient
	logger    *zap.Logger
}

// NewService creates the coaching service
func NewService(
	users outbound.UserRepository,
	workouts outbound.WorkoutRepository,
	diets outbound.DietRepository,
	progressRepo outbound.ProgressRepository,
	inference outbound.InferenceClient,
	logger *zap.Logger,
) inbound.CoachService {
	return &Service{
		users:     users,
		workouts:  workouts,
		diets:     diets,
		progress:  progressRepo,
		inference: inference,
		logger:    logger,
	}
}

// loadProfile fetches the user and requires a completed fitness
// profile. Missing user or missing profile are both surfaced as
// profile-not-found; the coach cannot work without measurements.
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return user.Profile{}, errors.NewProfileNotFoundError(userID.String())
	}
	if u.Profile() == nil {
		return user.Profile{}, errors.NewProfileNotFoundError(userID.String())
	}
	return *u.Profile(), nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	raw, err := s.inference.Generate(ctx, prompt, outbound.DefaultGenerationParams())
	if err != nil {
		s.logger.Warn("inference call failed", zap.Error(err))
		if errors.Is(err, errors.CodeInferenceUnavailable) {
			return "", err
		}
		return "", errors.NewInferenceUnavailableError(err)
	}
	return raw, nil
}

// SuggestWorkout generates a personalized workout plan. The energy and
// recovery estimates on the response always come from the calculators,
// overwriting anything the model returned.
func (s *Service) SuggestWorkout(ctx context.Context, userID uuid.UUID, cmd inbound.SuggestWorkoutCommand) (*coach.WorkoutPlan, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, _, err := s.workouts.FindByUserID(ctx, userID, 0, workoutHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load workout history")
	}

	builder := newPromptBuilder(profile.Locale)
	raw, err := s.generate(ctx, builder.BuildWorkoutPrompt(profile, cmd, history))
	if err != nil {
		return nil, err
	}

	plan := parseWorkoutPlan(raw)

	if plan.DurationMin <= 0 {
		plan.DurationMin = cmd.DurationMinutes
	}
	if plan.FrequencyWeek <= 0 {
		plan.FrequencyWeek = cmd.FrequencyPerWeek
	}
	if plan.FrequencyWeek <= 0 {
		plan.FrequencyWeek = 3
	}

	goal := profile.Goal
	if cmd.Goal != "" {
		goal = fitness.Goal(cmd.Goal)
	}
	workoutType := fitness.WorkoutType(cmd.WorkoutType)
	if workoutType == "" {
		workoutType = goalWorkoutType(goal)
	}
	level := profile.ExperienceLevel
	if cmd.Difficulty != "" {
		level = fitness.ExperienceLevel(cmd.Difficulty)
	}

	muscles := make([]string, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		muscles = append(muscles, ex.MuscleGroup)
	}

	plan.CaloriesBurned = fitness.CaloriesBurned(workoutType, plan.DurationMin, level, profile.WeightKg)
	plan.RecoveryHours = fitness.RecoveryHours(muscles, level, profile.Age)

	if cmd.Save && len(plan.Exercises) > 0 {
		if err := s.saveWorkout(ctx, userID, workoutType, plan); err != nil {
			// saving is best-effort; the suggestion is still valid
			s.logger.Warn("failed to persist suggested workout",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	return plan, nil
}

func (s *Service) saveWorkout(ctx context.Context, userID uuid.UUID, workoutType fitness.WorkoutType, plan *coach.WorkoutPlan) error {
	exercises := make([]workout.Exercise, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		exercises = append(exercises, workout.Exercise{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: ex.RestSeconds,
		})
	}

	w, err := workout.NewWorkout(userID, plan.Name, workoutType, exercises, plan.FrequencyWeek, plan.DurationMin)
	if err != nil {
		return err
	}
	w.SetDescription(plan.Description)
	w.MarkAIGenerated()
	w.AttachMetrics(plan.CaloriesBurned, plan.RecoveryHours)

	return s.workouts.Create(ctx, w)
}

// SuggestDiet generates a personalized meal plan. The calculated
// calorie and macro targets ride along with the model's plan so the
// client can show both.
func (s *Service) SuggestDiet(ctx context.Context, userID uuid.UUID, cmd inbound.SuggestDietCommand) (*coach.DietPlan, error) {
	if cmd.TargetCalories != nil && (*cmd.TargetCalories < minTargetCalories || *cmd.TargetCalories > maxTargetCalories) {
		return nil, errors.NewInvalidParametersError(
			fmt.Sprintf("targetCalories must be between %d and %d", minTargetCalories, maxTargetCalories))
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	bmr := profile.BMR()
	tdee := fitness.TDEE(bmr, profile.ActivityLevel)
	calculated := coach.CalculatedTargets{
		BMR:           math.Round(bmr*1000) / 1000,
		TDEE:          math.Round(tdee*1000) / 1000,
		DailyCalories: fitness.DailyCalorieNeeds(tdee, profile.Goal),
	}
	calculated.Macros = fitness.Macros(calculated.DailyCalories, profile.Goal)

	target := calculated.DailyCalories
	if cmd.TargetCalories != nil {
		target = *cmd.TargetCalories
	}

	history, _, err := s.diets.FindByUserID(ctx, userID, 0, dietHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load diet history")
	}

	builder := newPromptBuilder(profile.Locale)
	raw, err := s.generate(ctx, builder.BuildDietPrompt(profile, target, cmd, history))
	if err != nil {
		return nil, err
	}

	plan := parseDietPlan(raw)
	plan.Calculated = calculated
	if plan.DailyCalories <= 0 {
		plan.DailyCalories = target
	}

	if cmd.Save && len(plan.Meals) > 0 {
		if err := s.saveDiet(ctx, userID, profile.Goal, plan); err != nil {
			s.logger.Warn("failed to persist suggested diet",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	return plan, nil
}

func (s *Service) saveDiet(ctx context.Context, userID uuid.UUID, goal fitness.Goal, plan *coach.DietPlan) error {
	meals := make([]diet.Meal, 0, len(plan.Meals))
	for i, m := range plan.Meals {
		foods := make([]diet.Food, 0, len(m.Foods))
		for _, f := range m.Foods {
			foods = append(foods, diet.Food{
				Name:          f.Name,
				QuantityGrams: f.QuantityGrams,
				Calories:      f.Calories,
				ProteinGrams:  f.ProteinGrams,
				CarbsGrams:    f.CarbsGrams,
				FatGrams:      f.FatGrams,
			})
		}
		meals = append(meals, diet.Meal{
			Name:  m.Name,
			Type:  mealTypeForSlot(i, len(plan.Meals)),
			Time:  normalizeMealTime(m.Time, i, len(plan.Meals)),
			Foods: foods,
		})
	}

	calories := plan.DailyCalories
	if calories < minTargetCalories {
		calories = plan.Calculated.DailyCalories
	}

	d, err := diet.NewDiet(userID, plan.Name, goal, calories, plan.Macros, meals)
	if err != nil {
		return err
	}
	d.MarkAIGenerated()

	return s.diets.Create(ctx, d)
}

// insufficientDataAnalysis is the fixed response returned when the user
// has no progress history. Inference is not called in that case.
func insufficientDataAnalysis() *coach.ProgressAnalysis {
	return &coach.ProgressAnalysis{
		Analysis:     "Ainda não há registros suficientes para analisar sua evolução.",
		Achievements: []string{},
		Recommendations: []string{
			"Registre seu peso e medidas pelo menos uma vez por semana.",
			"Anote os treinos concluídos para acompanhar sua constância.",
		},
		Motivation: "Todo progresso começa com o primeiro registro. Vamos começar hoje!",
	}
}

// AnalyzeProgress reviews the user's measurement history. With no
// records it returns the fixed insufficient-data response and never
// touches the inference endpoint.
func (s *Service) AnalyzeProgress(ctx context.Context, userID uuid.UUID) (*coach.ProgressAnalysis, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.progress.FindByUserID(ctx, userID, time.Now().Add(-progressWindow), maxHistory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load progress history")
	}
	if len(records) == 0 {
		return insufficientDataAnalysis(), nil
	}

	trend, ok := progress.ComputeTrend(records)
	if !ok {
		// a single record carries no trend; treat like no history
		return insufficientDataAnalysis(), nil
	}

	builder := newPromptBuilder(profile.Locale)
	raw, err := s.generate(ctx, builder.BuildProgressPrompt(profile, trend, records))
	if err != nil {
		return nil, err
	}

	return parseProgressAnalysis(raw), nil
}

// Chat answers a single free-form fitness question with the user's
// profile as context. No conversation state is kept between calls; the
// caller may hand back prior turns through cmd.Context.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, cmd inbound.ChatCommand) (*coach.ChatAnswer, error) {
	question := strings.TrimSpace(cmd.Question)
	if question == "" {
		return nil, errors.NewInvalidParametersError("question must not be empty")
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	builder := newPromptBuilder(profile.Locale)
	raw, err := s.generate(ctx, builder.BuildChatPrompt(profile, question, cmd.Context))
	if err != nil {
		return nil, err
	}

	return parseChatAnswer(raw), nil
}

// EstimateNutrition estimates the macro breakdown of a food portion
func (s *Service) EstimateNutrition(ctx context.Context, userID uuid.UUID, cmd inbound.EstimateNutritionCommand) (*coach.NutritionEstimate, error) {
	cmd.Food = strings.TrimSpace(cmd.Food)
	if cmd.Food == "" {
		return nil, errors.NewInvalidParametersError("food must not be empty")
	}
	if cmd.QuantityGrams <= 0 {
		cmd.QuantityGrams = 100
	}

	// profile is required for authorization parity with the other coach
	// operations even though the estimate itself is profile-independent
	if _, err := s.loadProfile(ctx, userID); err != nil {
		return nil, err
	}

	builder := newPromptBuilder(fitness.LocalePTBR)
	raw, err := s.generate(ctx, builder.BuildNutritionPrompt(cmd))
	if err != nil {
		return nil, err
	}

	return parseNutritionEstimate(raw, cmd.Food, cmd.QuantityGrams), nil
}

// goalWorkoutType picks a default training modality for a goal when the
// caller did not ask for one.
func goalWorkoutType(goal fitness.Goal) fitness.WorkoutType {
	switch goal {
	case fitness.GoalLoseWeight:
		return fitness.WorkoutCardio
	case fitness.GoalGainMuscle:
		return fitness.WorkoutHypertrophy
	case fitness.GoalCut:
		return fitness.WorkoutFunctional
	case fitness.GoalStrength:
		return fitness.WorkoutStrength
	default:
		return fitness.WorkoutEndurance
	}
}

// mealTypeForSlot maps a meal's position in the day onto a meal type
func mealTypeForSlot(index, total int) diet.MealType {
	if total <= 0 {
		return diet.MealSnack
	}
	switch {
	case index == 0:
		return diet.MealBreakfast
	case index == total-1:
		return diet.MealDinner
	case index == total/2:
		return diet.MealLunch
	default:
		return diet.MealSnack
	}
}

// normalizeMealTime keeps a model-supplied HH:MM time or synthesizes an
// evenly spaced one between 07:00 and 21:00
func normalizeMealTime(t string, index, total int) string {
	if len(t) == 5 && t[2] == ':' {
		return t
	}
	if total <= 1 {
		return "12:00"
	}
	startMinutes := 7 * 60
	span := 14 * 60
	minutes := startMinutes + span*index/(total-1)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
