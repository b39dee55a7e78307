package diet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/api/internal/domain/fitness"
)

func sampleMeals() []Meal {
	return []Meal{
		{
			Name: "Café da manhã",
			Type: MealBreakfast,
			Time: "07:30",
			Foods: []Food{
				{Name: "Ovos mexidos", QuantityGrams: 150, Calories: 220, ProteinGrams: 19, CarbsGrams: 2, FatGrams: 15},
				{Name: "Pão integral", QuantityGrams: 50, Calories: 130, ProteinGrams: 5, CarbsGrams: 24, FatGrams: 2},
			},
		},
		{
			Name: "Almoço",
			Type: MealLunch,
			Time: "12:30",
			Foods: []Food{
				{Name: "Frango grelhado", QuantityGrams: 150, Calories: 250, ProteinGrams: 45, CarbsGrams: 0, FatGrams: 6},
				{Name: "Arroz", QuantityGrams: 100, Calories: 130, ProteinGrams: 3, CarbsGrams: 28, FatGrams: 0},
			},
		},
	}
}

func newTestDiet(t *testing.T) *Diet {
	t.Helper()
	d, err := NewDiet(uuid.New(), "Dieta de definição", fitness.GoalCut, 2100, fitness.MacroTargets{ProteinGrams: 184, CarbsGrams: 210, FatGrams: 58}, sampleMeals())
	require.NoError(t, err)
	return d
}

func TestNewDiet(t *testing.T) {
	t.Run("valid diet", func(t *testing.T) {
		d := newTestDiet(t)
		assert.Equal(t, "Dieta de definição", d.Name())
		assert.Equal(t, fitness.GoalCut, d.Goal())
		assert.Equal(t, 2100, d.DailyCalories())
		assert.Len(t, d.Meals(), 2)
		assert.False(t, d.IsAIGenerated())
	})

	tests := []struct {
		name     string
		dietName string
		calories int
		meals    []Meal
		wantErr  error
	}{
		{"empty name", "", 2100, sampleMeals(), ErrNameRequired},
		{"calories too low", "Dieta", 799, sampleMeals(), ErrInvalidCalories},
		{"calories too high", "Dieta", 5001, sampleMeals(), ErrInvalidCalories},
		{"no meals", "Dieta", 2100, nil, ErrNoMeals},
		{"bad meal type", "Dieta", 2100, []Meal{{Name: "x", Type: "brunch", Time: "10:00"}}, ErrInvalidMealType},
		{"bad meal time", "Dieta", 2100, []Meal{{Name: "x", Type: MealLunch, Time: "25:00"}}, ErrInvalidMealTime},
		{"meal time missing minutes", "Dieta", 2100, []Meal{{Name: "x", Type: MealLunch, Time: "9h30"}}, ErrInvalidMealTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDiet(uuid.New(), tt.dietName, fitness.GoalMaintain, tt.calories, fitness.MacroTargets{}, tt.meals)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCalorieTotals(t *testing.T) {
	d := newTestDiet(t)

	assert.InDelta(t, 730, d.PlannedCalories(), 0.001)
	assert.Zero(t, d.ConsumedCalories())

	require.NoError(t, d.ConsumeMeal("café da manhã"))
	assert.InDelta(t, 350, d.ConsumedCalories(), 0.001)

	macros := d.ConsumedMacros()
	assert.Equal(t, 24, macros.ProteinGrams)
	assert.Equal(t, 26, macros.CarbsGrams)
	assert.Equal(t, 17, macros.FatGrams)

	d.ResetConsumption()
	assert.Zero(t, d.ConsumedCalories())

	assert.ErrorIs(t, d.ConsumeMeal("Jantar"), ErrMealNotFound)
}
