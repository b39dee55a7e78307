package fitness

// Locale selects the language used for human-readable labels in prompts
// and API payloads. Canonical enum values stay in English internally.
type Locale string

const (
	// LocalePTBR is the default locale for the mobile app audience.
	LocalePTBR Locale = "pt-BR"
	LocaleEN   Locale = "en"
)

type labelSet struct {
	goals        map[Goal]string
	activities   map[ActivityLevel]string
	workoutTypes map[WorkoutType]string
	experience   map[ExperienceLevel]string
	muscles      map[string]string
	bmi          map[BMICategory]string
}

var labelSets = map[Locale]labelSet{
	LocalePTBR: {
		goals: map[Goal]string{
			GoalLoseWeight: "perder peso",
			GoalGainMuscle: "ganhar massa muscular",
			GoalMaintain:   "manter o peso",
			GoalCut:        "definição muscular",
			GoalStrength:   "ganhar força",
		},
		activities: map[ActivityLevel]string{
			ActivitySedentary:  "sedentário",
			ActivityLight:      "levemente ativo",
			ActivityModerate:   "moderadamente ativo",
			ActivityActive:     "ativo",
			ActivityVeryActive: "muito ativo",
		},
		workoutTypes: map[WorkoutType]string{
			WorkoutStrength:    "força",
			WorkoutHypertrophy: "hipertrofia",
			WorkoutEndurance:   "resistência",
			WorkoutCardio:      "cardio",
			WorkoutFlexibility: "flexibilidade",
			WorkoutFunctional:  "funcional",
		},
		experience: map[ExperienceLevel]string{
			ExperienceBeginner:     "iniciante",
			ExperienceIntermediate: "intermediário",
			ExperienceAdvanced:     "avançado",
		},
		muscles: map[string]string{
			"chest":    "peito",
			"back":     "costas",
			"shoulder": "ombro",
			"biceps":   "bíceps",
			"triceps":  "tríceps",
			"leg":      "perna",
			"glute":    "glúteo",
			"abdomen":  "abdômen",
		},
		bmi: map[BMICategory]string{
			BMIUnderweight:   "abaixo do peso",
			BMINormal:        "peso normal",
			BMIOverweight:    "sobrepeso",
			BMIObesityGrade1: "obesidade grau 1",
			BMIObesityGrade2: "obesidade grau 2",
		},
	},
	LocaleEN: {
		goals: map[Goal]string{
			GoalLoseWeight: "lose weight",
			GoalGainMuscle: "gain muscle",
			GoalMaintain:   "maintain weight",
			GoalCut:        "cut",
			GoalStrength:   "build strength",
		},
		activities: map[ActivityLevel]string{
			ActivitySedentary:  "sedentary",
			ActivityLight:      "lightly active",
			ActivityModerate:   "moderately active",
			ActivityActive:     "active",
			ActivityVeryActive: "very active",
		},
		workoutTypes: map[WorkoutType]string{
			WorkoutStrength:    "strength",
			WorkoutHypertrophy: "hypertrophy",
			WorkoutEndurance:   "endurance",
			WorkoutCardio:      "cardio",
			WorkoutFlexibility: "flexibility",
			WorkoutFunctional:  "functional",
		},
		experience: map[ExperienceLevel]string{
			ExperienceBeginner:     "beginner",
			ExperienceIntermediate: "intermediate",
			ExperienceAdvanced:     "advanced",
		},
		muscles: map[string]string{
			"chest":    "chest",
			"back":     "back",
			"shoulder": "shoulder",
			"biceps":   "biceps",
			"triceps":  "triceps",
			"leg":      "leg",
			"glute":    "glute",
			"abdomen":  "abdomen",
		},
		bmi: map[BMICategory]string{
			BMIUnderweight:   "underweight",
			BMINormal:        "normal weight",
			BMIOverweight:    "overweight",
			BMIObesityGrade1: "obesity grade 1",
			BMIObesityGrade2: "obesity grade 2",
		},
	},
}

func labelsFor(locale Locale) labelSet {
	if set, ok := labelSets[locale]; ok {
		return set
	}
	return labelSets[LocalePTBR]
}

// GoalLabel returns the localized label for a goal, falling back to the
// raw enum value for unknown goals.
func GoalLabel(locale Locale, goal Goal) string {
	if label, ok := labelsFor(locale).goals[goal]; ok {
		return label
	}
	return string(goal)
}

// ActivityLabel returns the localized label for an activity level.
func ActivityLabel(locale Locale, level ActivityLevel) string {
	if label, ok := labelsFor(locale).activities[level]; ok {
		return label
	}
	return string(level)
}

// WorkoutTypeLabel returns the localized label for a workout type.
func WorkoutTypeLabel(locale Locale, t WorkoutType) string {
	if label, ok := labelsFor(locale).workoutTypes[t]; ok {
		return label
	}
	return string(t)
}

// ExperienceLabel returns the localized label for an experience level.
func ExperienceLabel(locale Locale, level ExperienceLevel) string {
	if label, ok := labelsFor(locale).experience[level]; ok {
		return label
	}
	return string(level)
}

// MuscleLabel returns the localized label for a muscle group.
func MuscleLabel(locale Locale, group string) string {
	if label, ok := labelsFor(locale).muscles[normalizeMuscleGroup(group)]; ok {
		return label
	}
	return group
}

// BMICategoryLabel returns the localized label for a BMI category.
func BMICategoryLabel(locale Locale, category BMICategory) string {
	if label, ok := labelsFor(locale).bmi[category]; ok {
		return label
	}
	return string(category)
}
