package coach

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fitforge/api/internal/domain/coach"
	"github.com/fitforge/api/internal/domain/fitness"
)

// Language models wrap their JSON in prose more often than not. The
// parser extracts the widest brace-delimited span, coerces loosely
// typed fields and, when nothing parseable remains, falls back to a
// deterministic default carrying the raw text. It never returns an
// error: unstructured output is a degraded answer, not a failure.

// extractJSON returns the substring from the first '{' to the last '}'
// of raw, or false when no such span exists.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func parseObject(raw string) (map[string]interface{}, bool) {
	span, ok := extractJSON(raw)
	if !ok {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// Coercion helpers. Models emit numbers as strings and strings as
// numbers with some regularity; be liberal in what we accept.

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}

func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asObjectSlice(v interface{}) []map[string]interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []map[string]interface{}
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

// firstOf returns the first present key, tolerating the field name
// variants models drift between.
func firstOf(obj map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

const fallbackNote = "Não foi possível estruturar a resposta do treinador. Texto original abaixo."

// parseWorkoutPlan builds a WorkoutPlan from raw model output
func parseWorkoutPlan(raw string) *coach.WorkoutPlan {
	obj, ok := parseObject(raw)
	if !ok {
		return &coach.WorkoutPlan{
			Name:        "Treino sugerido",
			Description: strings.TrimSpace(raw),
			Tips:        []string{fallbackNote},
		}
	}

	plan := &coach.WorkoutPlan{
		Name:          asString(firstOf(obj, "name", "workoutName", "nome")),
		Description:   asString(firstOf(obj, "description", "descricao")),
		FrequencyWeek: asInt(firstOf(obj, "frequencyPerWeek", "frequency", "frequencia")),
		DurationMin:   asInt(firstOf(obj, "durationMinutes", "duration", "duracao")),
		Tips:          asStringSlice(firstOf(obj, "tips", "dicas")),
	}

	for _, ex := range asObjectSlice(firstOf(obj, "exercises", "exercicios")) {
		exercise := coach.SuggestedExercise{
			Name:        asString(firstOf(ex, "name", "nome")),
			MuscleGroup: asString(firstOf(ex, "muscleGroup", "muscle", "grupoMuscular")),
			Sets:        asInt(firstOf(ex, "sets", "series")),
			Reps:        asInt(firstOf(ex, "reps", "repeticoes")),
			RestSeconds: asInt(firstOf(ex, "restSeconds", "rest", "descanso")),
		}
		if exercise.Name == "" {
			continue
		}
		if exercise.Sets <= 0 {
			exercise.Sets = 3
		}
		if exercise.Reps <= 0 {
			exercise.Reps = 12
		}
		plan.Exercises = append(plan.Exercises, exercise)
	}

	if plan.Name == "" {
		plan.Name = "Treino sugerido"
	}
	return plan
}

// parseDietPlan builds a DietPlan from raw model output
func parseDietPlan(raw string) *coach.DietPlan {
	obj, ok := parseObject(raw)
	if !ok {
		return &coach.DietPlan{
			Name: "Plano alimentar sugerido",
			Tips: []string{fallbackNote, strings.TrimSpace(raw)},
		}
	}

	plan := &coach.DietPlan{
		Name:          asString(firstOf(obj, "name", "nome")),
		DailyCalories: asInt(firstOf(obj, "dailyCalories", "calories", "caloriasDiarias")),
		Tips:          asStringSlice(firstOf(obj, "tips", "dicas")),
	}

	if macros, ok := firstOf(obj, "macros").(map[string]interface{}); ok {
		plan.Macros = fitness.MacroTargets{
			ProteinGrams: asInt(firstOf(macros, "proteinGrams", "protein", "proteina")),
			CarbsGrams:   asInt(firstOf(macros, "carbsGrams", "carbs", "carboidrato")),
			FatGrams:     asInt(firstOf(macros, "fatGrams", "fat", "gordura")),
		}
	}

	for _, m := range asObjectSlice(firstOf(obj, "meals", "refeicoes")) {
		meal := coach.SuggestedMeal{
			Name: asString(firstOf(m, "name", "nome")),
			Time: asString(firstOf(m, "time", "horario")),
		}
		for _, f := range asObjectSlice(firstOf(m, "foods", "alimentos")) {
			food := coach.SuggestedFood{
				Name:          asString(firstOf(f, "name", "nome")),
				QuantityGrams: asFloat(firstOf(f, "quantityGrams", "quantity", "quantidade")),
				Calories:      asFloat(firstOf(f, "calories", "calorias")),
				ProteinGrams:  asFloat(firstOf(f, "proteinGrams", "protein", "proteina")),
				CarbsGrams:    asFloat(firstOf(f, "carbsGrams", "carbs", "carboidrato")),
				FatGrams:      asFloat(firstOf(f, "fatGrams", "fat", "gordura")),
			}
			if food.Name != "" {
				meal.Foods = append(meal.Foods, food)
			}
		}
		if meal.Name != "" {
			plan.Meals = append(plan.Meals, meal)
		}
	}

	if plan.Name == "" {
		plan.Name = "Plano alimentar sugerido"
	}
	return plan
}

// parseProgressAnalysis builds a ProgressAnalysis from raw model output
func parseProgressAnalysis(raw string) *coach.ProgressAnalysis {
	obj, ok := parseObject(raw)
	if !ok {
		return &coach.ProgressAnalysis{
			Analysis:        strings.TrimSpace(raw),
			Recommendations: []string{fallbackNote},
		}
	}

	analysis := &coach.ProgressAnalysis{
		Analysis:        asString(firstOf(obj, "analysis", "analise")),
		Achievements:    asStringSlice(firstOf(obj, "achievements", "conquistas")),
		Recommendations: asStringSlice(firstOf(obj, "recommendations", "recomendacoes")),
		Motivation:      asString(firstOf(obj, "motivation", "motivacao")),
	}

	if analysis.Analysis == "" {
		analysis.Analysis = strings.TrimSpace(raw)
	}
	return analysis
}

// parseChatAnswer builds a ChatAnswer from raw model output. Plain text
// answers are accepted as-is.
func parseChatAnswer(raw string) *coach.ChatAnswer {
	if obj, ok := parseObject(raw); ok {
		if answer := asString(firstOf(obj, "answer", "resposta")); answer != "" {
			return &coach.ChatAnswer{Answer: answer}
		}
	}
	return &coach.ChatAnswer{Answer: strings.TrimSpace(raw)}
}

// parseNutritionEstimate builds a NutritionEstimate from raw model output
func parseNutritionEstimate(raw string, food string, quantityGrams float64) *coach.NutritionEstimate {
	obj, ok := parseObject(raw)
	if !ok {
		return &coach.NutritionEstimate{
			Food:          food,
			QuantityGrams: quantityGrams,
			Notes:         fallbackNote + " " + strings.TrimSpace(raw),
		}
	}

	estimate := &coach.NutritionEstimate{
		Food:          asString(firstOf(obj, "food", "alimento")),
		QuantityGrams: asFloat(firstOf(obj, "quantityGrams", "quantity", "quantidade")),
		Calories:      asFloat(firstOf(obj, "calories", "calorias")),
		ProteinGrams:  asFloat(firstOf(obj, "proteinGrams", "protein", "proteina")),
		CarbsGrams:    asFloat(firstOf(obj, "carbsGrams", "carbs", "carboidrato")),
		FatGrams:      asFloat(firstOf(obj, "fatGrams", "fat", "gordura")),
		Notes:         asString(firstOf(obj, "notes", "observacoes")),
	}

	if estimate.Food == "" {
		estimate.Food = food
	}
	if estimate.QuantityGrams == 0 {
		estimate.QuantityGrams = quantityGrams
	}
	return estimate
}
