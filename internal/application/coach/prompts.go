package coach

import (
	"fmt"
	"strings"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/domain/workout"
	"github.com/fitforge/api/internal/ports/inbound"
)

// Placeholders substituted when an optional input is absent, so every
// prompt line is always present and the model never sees a gap.
const (
	noWorkoutHistory = "Nenhum treino registrado"
	noDietHistory    = "Nenhuma dieta registrada"
	noChatContext    = "Nenhum contexto adicional"
	generalFocus     = "geral"
	maintenanceDiet  = "manutenção"
)

// promptBuilder assembles the text sent to the inference endpoint. Pure
// string construction: no I/O, no clock, fully deterministic for a
// given profile and command.
type promptBuilder struct {
	locale fitness.Locale
}

func newPromptBuilder(locale fitness.Locale) *promptBuilder {
	if locale == "" {
		locale = fitness.LocalePTBR
	}
	return &promptBuilder{locale: locale}
}

// focusLine renders the requested muscle groups, defaulting to a
// general focus when none were asked for.
func (b *promptBuilder) focusLine(muscles []string) string {
	if len(muscles) == 0 {
		return generalFocus
	}
	labels := make([]string, len(muscles))
	for i, m := range muscles {
		labels[i] = fitness.MuscleLabel(b.locale, m)
	}
	return strings.Join(labels, ", ")
}

// workoutHistoryLine summarizes recent workouts as "name (type)" pairs
func (b *promptBuilder) workoutHistoryLine(history []*workout.Workout) string {
	if len(history) == 0 {
		return noWorkoutHistory
	}
	entries := make([]string, len(history))
	for i, w := range history {
		entries[i] = fmt.Sprintf("%s (%s)", w.Name(), fitness.WorkoutTypeLabel(b.locale, w.Type()))
	}
	return strings.Join(entries, ", ")
}

// dietHistoryLine summarizes recent diets as "name (goal)" pairs
func (b *promptBuilder) dietHistoryLine(history []*diet.Diet) string {
	if len(history) == 0 {
		return noDietHistory
	}
	entries := make([]string, len(history))
	for i, d := range history {
		entries[i] = fmt.Sprintf("%s (%s)", d.Name(), fitness.GoalLabel(b.locale, d.Goal()))
	}
	return strings.Join(entries, ", ")
}

// profileSection renders the user's profile and derived metrics as
// context lines shared by every prompt.
func (b *promptBuilder) profileSection(p user.Profile) string {
	var sb strings.Builder

	sb.WriteString("Perfil do aluno:\n")
	fmt.Fprintf(&sb, "- Idade: %d anos\n", p.Age)
	fmt.Fprintf(&sb, "- Altura: %.0f cm\n", p.HeightCm)
	fmt.Fprintf(&sb, "- Peso: %.1f kg\n", p.WeightKg)
	fmt.Fprintf(&sb, "- Objetivo: %s\n", fitness.GoalLabel(b.locale, p.Goal))
	fmt.Fprintf(&sb, "- Nível de atividade: %s\n", fitness.ActivityLabel(b.locale, p.ActivityLevel))
	fmt.Fprintf(&sb, "- Experiência: %s\n", fitness.ExperienceLabel(b.locale, p.ExperienceLevel))

	if bmi := p.BMI(); bmi != nil {
		fmt.Fprintf(&sb, "- IMC: %.1f (%s)\n", *bmi, fitness.BMICategoryLabel(b.locale, p.BMICategory()))
	}
	fmt.Fprintf(&sb, "- Necessidade calórica diária: %d kcal\n", p.DailyCalorieNeeds())

	return sb.String()
}

// BuildWorkoutPrompt asks the model for a structured workout plan.
// Every parameter line is always emitted: absent optional inputs are
// replaced by their defaults rather than skipped.
func (b *promptBuilder) BuildWorkoutPrompt(p user.Profile, cmd inbound.SuggestWorkoutCommand, history []*workout.Workout) string {
	var sb strings.Builder

	sb.WriteString("Você é um personal trainer experiente. Monte um treino personalizado.\n\n")
	sb.WriteString(b.profileSection(p))

	goal := p.Goal
	if cmd.Goal != "" {
		goal = fitness.Goal(cmd.Goal)
	}
	difficulty := fitness.ExperienceLevel(cmd.Difficulty)
	if difficulty == "" {
		difficulty = fitness.ExperienceIntermediate
	}
	duration := cmd.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	sb.WriteString("\nParâmetros do treino:\n")
	fmt.Fprintf(&sb, "- Objetivo: %s\n", fitness.GoalLabel(b.locale, goal))
	if cmd.WorkoutType != "" {
		fmt.Fprintf(&sb, "- Tipo de treino desejado: %s\n", fitness.WorkoutTypeLabel(b.locale, fitness.WorkoutType(cmd.WorkoutType)))
	}
	fmt.Fprintf(&sb, "- Grupos musculares em foco: %s\n", b.focusLine(cmd.FocusMuscles))
	fmt.Fprintf(&sb, "- Dificuldade: %s\n", fitness.ExperienceLabel(b.locale, difficulty))
	fmt.Fprintf(&sb, "- Duração: %d minutos\n", duration)
	if cmd.FrequencyPerWeek > 0 {
		fmt.Fprintf(&sb, "- Frequência semanal: %d dias\n", cmd.FrequencyPerWeek)
	}

	fmt.Fprintf(&sb, "\nHistórico recente de treinos: %s\n", b.workoutHistoryLine(history))

	sb.WriteString(`
Responda APENAS com um objeto JSON válido, sem texto adicional, no formato:
{
  "name": "nome do treino",
  "description": "descrição breve",
  "exercises": [
    {"name": "exercício", "muscleGroup": "grupo muscular", "sets": 4, "reps": 10, "restSeconds": 90}
  ],
  "frequencyPerWeek": 3,
  "durationMinutes": 60,
  "tips": ["dica 1", "dica 2"]
}
`)

	return sb.String()
}

// BuildDietPrompt asks the model for a structured meal plan
func (b *promptBuilder) BuildDietPrompt(p user.Profile, targetCalories int, cmd inbound.SuggestDietCommand, history []*diet.Diet) string {
	var sb strings.Builder

	sb.WriteString("Você é um nutricionista esportivo. Monte um plano alimentar diário.\n\n")
	sb.WriteString(b.profileSection(p))

	dietType := cmd.DietType
	if dietType == "" {
		dietType = maintenanceDiet
	}

	sb.WriteString("\nParâmetros da dieta:\n")
	fmt.Fprintf(&sb, "- Tipo: %s\n", dietType)
	fmt.Fprintf(&sb, "- Meta calórica diária: %d kcal\n", targetCalories)
	macros := fitness.Macros(targetCalories, p.Goal)
	fmt.Fprintf(&sb, "- Distribuição de macros: %dg proteína, %dg carboidrato, %dg gordura\n",
		macros.ProteinGrams, macros.CarbsGrams, macros.FatGrams)

	if cmd.MealsPerDay > 0 {
		fmt.Fprintf(&sb, "- Número de refeições: %d\n", cmd.MealsPerDay)
	}
	if len(cmd.Restrictions) > 0 {
		fmt.Fprintf(&sb, "- Restrições alimentares: %s\n", strings.Join(cmd.Restrictions, ", "))
	}

	fmt.Fprintf(&sb, "\nHistórico recente de dietas: %s\n", b.dietHistoryLine(history))

	sb.WriteString(`
Responda APENAS com um objeto JSON válido, sem texto adicional, no formato:
{
  "name": "nome do plano",
  "meals": [
    {
      "name": "café da manhã",
      "time": "07:30",
      "foods": [
        {"name": "alimento", "quantityGrams": 150, "calories": 220, "proteinGrams": 19, "carbsGrams": 2, "fatGrams": 15}
      ]
    }
  ],
  "dailyCalories": 2000,
  "macros": {"proteinGrams": 150, "carbsGrams": 200, "fatGrams": 60},
  "tips": ["dica 1"]
}
`)

	return sb.String()
}

// BuildProgressPrompt asks the model to review measured progress
func (b *promptBuilder) BuildProgressPrompt(p user.Profile, trend progress.Trend, records []*progress.Record) string {
	var sb strings.Builder

	sb.WriteString("Você é um treinador analisando a evolução de um aluno.\n\n")
	sb.WriteString(b.profileSection(p))

	fmt.Fprintf(&sb, "\nHistórico (%d registros de %s a %s):\n",
		trend.Records, trend.From.Format("02/01/2006"), trend.To.Format("02/01/2006"))
	fmt.Fprintf(&sb, "- Peso inicial: %.1f kg, peso atual: %.1f kg (variação %+.1f kg)\n",
		trend.StartWeightKg, trend.EndWeightKg, trend.WeightDeltaKg)
	fmt.Fprintf(&sb, "- Variação semanal média: %+.2f kg\n", trend.WeeklyChangeKg)
	fmt.Fprintf(&sb, "- Treinos concluídos no período: %d\n", trend.TotalWorkouts)

	// last few entries give the model texture beyond the aggregates
	shown := len(records)
	if shown > 5 {
		shown = 5
	}
	for _, r := range records[:shown] {
		fmt.Fprintf(&sb, "- %s: %.1f kg", r.Date().Format("02/01/2006"), r.WeightKg())
		if bf := r.BodyFatPercent(); bf != nil {
			fmt.Fprintf(&sb, ", %.1f%% gordura", *bf)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`
Responda APENAS com um objeto JSON válido, sem texto adicional, no formato:
{
  "analysis": "análise objetiva da evolução",
  "achievements": ["conquista 1"],
  "recommendations": ["recomendação 1"],
  "motivation": "mensagem motivacional curta"
}
`)

	return sb.String()
}

// BuildChatPrompt wraps a free-form question with the user's context.
// Extra is caller-supplied prior conversation; the placeholder keeps
// the line present when there is none.
func (b *promptBuilder) BuildChatPrompt(p user.Profile, question, extra string) string {
	var sb strings.Builder

	sb.WriteString("Você é um coach de fitness respondendo a uma dúvida pontual. Seja direto e prático.\n\n")
	sb.WriteString(b.profileSection(p))

	extra = strings.TrimSpace(extra)
	if extra == "" {
		extra = noChatContext
	}
	fmt.Fprintf(&sb, "\nContexto adicional: %s\n", extra)
	fmt.Fprintf(&sb, "Pergunta do aluno: %s\n", strings.TrimSpace(question))

	sb.WriteString(`
Responda APENAS com um objeto JSON válido no formato:
{"answer": "sua resposta"}
`)

	return sb.String()
}

// BuildNutritionPrompt asks for a macro estimate of a food portion
func (b *promptBuilder) BuildNutritionPrompt(cmd inbound.EstimateNutritionCommand) string {
	var sb strings.Builder

	sb.WriteString("Você é um nutricionista. Estime os valores nutricionais do alimento abaixo.\n\n")
	fmt.Fprintf(&sb, "Alimento: %s\n", strings.TrimSpace(cmd.Food))
	fmt.Fprintf(&sb, "Quantidade: %.0f g\n", cmd.QuantityGrams)

	sb.WriteString(`
Responda APENAS com um objeto JSON válido, sem texto adicional, no formato:
{"food": "alimento", "quantityGrams": 100, "calories": 165, "proteinGrams": 31, "carbsGrams": 0, "fatGrams": 3.6, "notes": "observações"}
`)

	return sb.String()
}
