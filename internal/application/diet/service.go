// Package diet contains the diet plan application service
package diet

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service implements inbound.DietService
type Service struct {
	diets  outbound.DietRepository
	logger *zap.Logger
}

// NewService creates the diet service
func NewService(diets outbound.DietRepository, logger *zap.Logger) inbound.DietService {
	return &Service{
		diets:  diets,
		logger: logger,
	}
}

// Create builds a hand-made diet plan. Macro targets are derived from
// the plan's own calories and goal so the stored plan is internally
// consistent.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, cmd inbound.CreateDietCommand) (*diet.Diet, error) {
	meals := mealsFromInputs(cmd.Meals)
	goal := fitness.Goal(cmd.Goal)
	macros := fitness.Macros(cmd.DailyCalories, goal)

	d, err := diet.NewDiet(userID, cmd.Name, goal, cmd.DailyCalories, macros, meals)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.diets.Create(ctx, d); err != nil {
		return nil, errors.NewDatabaseError("create diet", err)
	}

	s.logger.Info("diet created",
		zap.String("diet_id", d.ID().String()),
		zap.String("user_id", userID.String()))

	return d, nil
}

// Update replaces the plan definition of a diet owned by the user.
// Consumption state is discarded with the replaced meals.
func (s *Service) Update(ctx context.Context, userID, dietID uuid.UUID, cmd inbound.CreateDietCommand) (*diet.Diet, error) {
	d, err := s.ownedDiet(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}

	goal := fitness.Goal(cmd.Goal)
	macros := fitness.Macros(cmd.DailyCalories, goal)
	if err := d.UpdatePlan(cmd.Name, goal, cmd.DailyCalories, macros, mealsFromInputs(cmd.Meals)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.diets.Update(ctx, d); err != nil {
		return nil, errors.NewDatabaseError("update diet", err)
	}
	return d, nil
}

func mealsFromInputs(inputs []inbound.MealInput) []diet.Meal {
	meals := make([]diet.Meal, 0, len(inputs))
	for _, m := range inputs {
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
			Type:  diet.MealType(m.Type),
			Time:  m.Time,
			Foods: foods,
		})
	}
	return meals
}

// GetByID loads a diet owned by the user
func (s *Service) GetByID(ctx context.Context, userID, dietID uuid.UUID) (*diet.Diet, error) {
	return s.ownedDiet(ctx, userID, dietID)
}

// List returns the user's diets with the total count
func (s *Service) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*diet.Diet, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.diets.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list diets", err)
	}
	return items, total, nil
}

// ConsumeMeal marks one meal of the diet as eaten today
func (s *Service) ConsumeMeal(ctx context.Context, userID, dietID uuid.UUID, mealName string) (*diet.Diet, error) {
	d, err := s.ownedDiet(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}

	if err := d.ConsumeMeal(mealName); err != nil {
		return nil, errors.NewInvalidParametersError(err.Error())
	}

	if err := s.diets.Update(ctx, d); err != nil {
		return nil, errors.NewDatabaseError("update diet", err)
	}
	return d, nil
}

// ResetConsumption clears all consumed flags, typically at the start of
// a new day
func (s *Service) ResetConsumption(ctx context.Context, userID, dietID uuid.UUID) (*diet.Diet, error) {
	d, err := s.ownedDiet(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}

	d.ResetConsumption()
	if err := s.diets.Update(ctx, d); err != nil {
		return nil, errors.NewDatabaseError("update diet", err)
	}
	return d, nil
}

// Delete removes a diet owned by the user
func (s *Service) Delete(ctx context.Context, userID, dietID uuid.UUID) error {
	if _, err := s.ownedDiet(ctx, userID, dietID); err != nil {
		return err
	}

	if err := s.diets.Delete(ctx, dietID); err != nil {
		return errors.NewDatabaseError("delete diet", err)
	}

	s.logger.Info("diet deleted",
		zap.String("diet_id", dietID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// ownedDiet loads a diet and hides it behind not-found when it belongs
// to someone else.
func (s *Service) ownedDiet(ctx context.Context, userID, dietID uuid.UUID) (*diet.Diet, error) {
	d, err := s.diets.FindByID(ctx, dietID)
	if err != nil {
		return nil, errors.NewDietNotFoundError(dietID.String())
	}
	if d.UserID() != userID {
		return nil, errors.NewDietNotFoundError(dietID.String())
	}
	return d, nil
}
