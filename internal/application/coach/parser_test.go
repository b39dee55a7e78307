package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("json wrapped in prose", func(t *testing.T) {
		raw := "Claro! Aqui está o treino:\n{\"name\": \"Treino A\"}\nBons treinos!"
		span, ok := extractJSON(raw)
		require.True(t, ok)
		assert.Equal(t, `{"name": "Treino A"}`, span)
	})

	t.Run("spans outermost braces", func(t *testing.T) {
		raw := `prefix {"a": {"b": 1}} suffix`
		span, ok := extractJSON(raw)
		require.True(t, ok)
		assert.Equal(t, `{"a": {"b": 1}}`, span)
	})

	t.Run("no braces", func(t *testing.T) {
		_, ok := extractJSON("treine pesado e descanse bem")
		assert.False(t, ok)
	})

	t.Run("closing brace before opening", func(t *testing.T) {
		_, ok := extractJSON("} nope {")
		assert.False(t, ok)
	})
}

func TestParseWorkoutPlan(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		raw := `Aqui está:
{
  "name": "Treino de Peito",
  "description": "Foco em hipertrofia",
  "exercises": [
    {"name": "Supino reto", "muscleGroup": "chest", "sets": 4, "reps": 10, "restSeconds": 90},
    {"name": "Crucifixo", "muscleGroup": "chest", "sets": 3, "reps": 12, "restSeconds": 60}
  ],
  "frequencyPerWeek": 3,
  "durationMinutes": 50,
  "tips": ["Aqueça antes", "Hidrate-se"]
}`
		plan := parseWorkoutPlan(raw)

		assert.Equal(t, "Treino de Peito", plan.Name)
		require.Len(t, plan.Exercises, 2)
		assert.Equal(t, "Supino reto", plan.Exercises[0].Name)
		assert.Equal(t, 4, plan.Exercises[0].Sets)
		assert.Equal(t, 3, plan.FrequencyWeek)
		assert.Equal(t, 50, plan.DurationMin)
		assert.Equal(t, []string{"Aqueça antes", "Hidrate-se"}, plan.Tips)
	})

	t.Run("numbers as strings are coerced", func(t *testing.T) {
		raw := `{"name": "Treino", "exercises": [{"name": "Agachamento", "sets": "4", "reps": "8"}], "frequencyPerWeek": "3"}`
		plan := parseWorkoutPlan(raw)

		require.Len(t, plan.Exercises, 1)
		assert.Equal(t, 4, plan.Exercises[0].Sets)
		assert.Equal(t, 8, plan.Exercises[0].Reps)
		assert.Equal(t, 3, plan.FrequencyWeek)
	})

	t.Run("missing sets and reps get defaults", func(t *testing.T) {
		raw := `{"exercises": [{"name": "Remada"}]}`
		plan := parseWorkoutPlan(raw)

		require.Len(t, plan.Exercises, 1)
		assert.Equal(t, 3, plan.Exercises[0].Sets)
		assert.Equal(t, 12, plan.Exercises[0].Reps)
	})

	t.Run("nameless exercises are dropped", func(t *testing.T) {
		raw := `{"exercises": [{"sets": 3}, {"name": "Remada", "sets": 3, "reps": 10}]}`
		plan := parseWorkoutPlan(raw)
		require.Len(t, plan.Exercises, 1)
		assert.Equal(t, "Remada", plan.Exercises[0].Name)
	})

	t.Run("unstructured output falls back deterministically", func(t *testing.T) {
		raw := "Faça supino e agachamento três vezes por semana."
		first := parseWorkoutPlan(raw)
		second := parseWorkoutPlan(raw)

		assert.Equal(t, first, second)
		assert.Equal(t, "Treino sugerido", first.Name)
		assert.Equal(t, raw, first.Description, "raw text is preserved")
		assert.Contains(t, first.Tips, fallbackNote)
		assert.Empty(t, first.Exercises)
	})

	t.Run("invalid json inside braces falls back", func(t *testing.T) {
		plan := parseWorkoutPlan(`{"name": "Treino`)
		assert.Equal(t, "Treino sugerido", plan.Name)
	})
}

func TestParseDietPlan(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		raw := `{
  "name": "Plano de corte",
  "meals": [
    {"name": "Café da manhã", "time": "07:30", "foods": [
      {"name": "Ovos", "quantityGrams": 150, "calories": 220, "proteinGrams": 19, "carbsGrams": 2, "fatGrams": 15}
    ]}
  ],
  "dailyCalories": 2100,
  "macros": {"proteinGrams": 184, "carbsGrams": 210, "fatGrams": 58},
  "tips": ["Beba água"]
}`
		plan := parseDietPlan(raw)

		assert.Equal(t, "Plano de corte", plan.Name)
		assert.Equal(t, 2100, plan.DailyCalories)
		assert.Equal(t, 184, plan.Macros.ProteinGrams)
		require.Len(t, plan.Meals, 1)
		require.Len(t, plan.Meals[0].Foods, 1)
		assert.Equal(t, 220.0, plan.Meals[0].Foods[0].Calories)
	})

	t.Run("unstructured output preserves raw text in tips", func(t *testing.T) {
		raw := "Coma mais proteína e menos açúcar."
		plan := parseDietPlan(raw)

		assert.Equal(t, "Plano alimentar sugerido", plan.Name)
		assert.Contains(t, plan.Tips, fallbackNote)
		assert.Contains(t, plan.Tips, raw)
		assert.Empty(t, plan.Meals)
	})
}

func TestParseProgressAnalysis(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		raw := `{"analysis": "Boa evolução", "achievements": ["-3kg"], "recommendations": ["manter ritmo"], "motivation": "Continue!"}`
		a := parseProgressAnalysis(raw)

		assert.Equal(t, "Boa evolução", a.Analysis)
		assert.Equal(t, []string{"-3kg"}, a.Achievements)
		assert.Equal(t, "Continue!", a.Motivation)
	})

	t.Run("plain text becomes the analysis", func(t *testing.T) {
		a := parseProgressAnalysis("Você está indo bem, continue assim.")
		assert.Equal(t, "Você está indo bem, continue assim.", a.Analysis)
		assert.Contains(t, a.Recommendations, fallbackNote)
	})
}

func TestParseChatAnswer(t *testing.T) {
	t.Run("structured answer", func(t *testing.T) {
		a := parseChatAnswer(`{"answer": "Treine 3x por semana."}`)
		assert.Equal(t, "Treine 3x por semana.", a.Answer)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		a := parseChatAnswer("  Treine 3x por semana.  ")
		assert.Equal(t, "Treine 3x por semana.", a.Answer)
	})
}

func TestParseNutritionEstimate(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		raw := `{"food": "Frango grelhado", "quantityGrams": 150, "calories": 247, "proteinGrams": 46, "carbsGrams": 0, "fatGrams": 5.4}`
		e := parseNutritionEstimate(raw, "frango", 150)

		assert.Equal(t, "Frango grelhado", e.Food)
		assert.Equal(t, 247.0, e.Calories)
	})

	t.Run("fallback keeps request context", func(t *testing.T) {
		e := parseNutritionEstimate("não sei dizer", "frango", 150)

		assert.Equal(t, "frango", e.Food)
		assert.Equal(t, 150.0, e.QuantityGrams)
		assert.Contains(t, e.Notes, fallbackNote)
		assert.Zero(t, e.Calories)
	})
}
