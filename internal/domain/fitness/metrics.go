// Package fitness contains the pure health metric calculators shared by
// the coaching services and the profile endpoints. Every function here is
// deterministic and side-effect free so callers can use them in request
// handlers, prompt construction and tests alike.
package fitness

import (
	"math"
	"strings"
)

// Goal identifies the user's training objective.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalGainMuscle Goal = "gain_muscle"
	GoalMaintain   Goal = "maintain"
	GoalCut        Goal = "cut"
	GoalStrength   Goal = "strength"
)

// ActivityLevel identifies weekly activity frequency.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Gender as used by the Harris-Benedict equations.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ExperienceLevel identifies training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// BMICategory is a classification of a body mass index value.
type BMICategory string

const (
	BMIUnderweight   BMICategory = "underweight"
	BMINormal        BMICategory = "normal"
	BMIOverweight    BMICategory = "overweight"
	BMIObesityGrade1 BMICategory = "obesity_grade_1"
	BMIObesityGrade2 BMICategory = "obesity_grade_2"
)

// MacroTargets holds daily macronutrient targets in grams.
type MacroTargets struct {
	ProteinGrams int `json:"proteinGrams"`
	CarbsGrams   int `json:"carbsGrams"`
	FatGrams     int `json:"fatGrams"`
}

// macroSplit is a calorie ratio triple. Ratios sum to 1.
type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroSplits = map[Goal]macroSplit{
	GoalLoseWeight: {protein: 0.35, carbs: 0.35, fat: 0.30},
	GoalGainMuscle: {protein: 0.30, carbs: 0.45, fat: 0.25},
	GoalMaintain:   {protein: 0.25, carbs: 0.50, fat: 0.25},
	GoalCut:        {protein: 0.35, carbs: 0.40, fat: 0.25},
	GoalStrength:   {protein: 0.30, carbs: 0.45, fat: 0.25},
}

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[Goal]float64{
	GoalLoseWeight: -500,
	GoalGainMuscle: 300,
	GoalMaintain:   0,
	GoalCut:        -200,
	GoalStrength:   200,
}

// BMI computes body mass index from height in centimeters and weight in
// kilograms, rounded to one decimal place. Returns nil when either
// measurement is missing or non-positive; a zero here would read as a
// real (and alarming) index downstream.
func BMI(heightCm, weightKg float64) *float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return nil
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	rounded := math.Round(bmi*10) / 10
	return &rounded
}

// ClassifyBMI maps a BMI value onto its category. Boundaries are
// half-open: 18.5 is normal, 25 is overweight, 30 is obesity grade 1,
// 35 is obesity grade 2.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObesityGrade1
	default:
		return BMIObesityGrade2
	}
}

// BMR computes basal metabolic rate using the revised Harris-Benedict
// equations. Any gender other than male uses the female coefficients.
// The result is not rounded; downstream rounding happens once, on the
// final calorie figure.
func BMR(gender Gender, weightKg, heightCm float64, age int) float64 {
	if gender == GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// TDEE computes total daily energy expenditure by scaling BMR with the
// activity multiplier. Unknown activity levels fall back to moderate.
func TDEE(bmr float64, level ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	return bmr * multiplier
}

// DailyCalorieNeeds computes the daily calorie target for a goal,
// rounded to the nearest integer. Unknown goals get no adjustment.
func DailyCalorieNeeds(tdee float64, goal Goal) int {
	return int(math.Round(tdee + goalAdjustments[goal]))
}

// Macros splits a daily calorie target into macronutrient grams using
// the goal's calorie ratios. Protein and carbohydrates count 4 kcal per
// gram, fat 9. Unknown goals use the maintenance split.
func Macros(dailyCalories int, goal Goal) MacroTargets {
	split, ok := macroSplits[goal]
	if !ok {
		split = macroSplits[GoalMaintain]
	}
	cal := float64(dailyCalories)
	return MacroTargets{
		ProteinGrams: int(math.Round(cal * split.protein / 4)),
		CarbsGrams:   int(math.Round(cal * split.carbs / 4)),
		FatGrams:     int(math.Round(cal * split.fat / 9)),
	}
}

// WorkoutType identifies a training modality.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutHypertrophy WorkoutType = "hypertrophy"
	WorkoutEndurance   WorkoutType = "endurance"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutFunctional  WorkoutType = "functional"
)

var caloriesPerMinute = map[WorkoutType]float64{
	WorkoutStrength:    4,
	WorkoutHypertrophy: 5,
	WorkoutEndurance:   6,
	WorkoutCardio:      8,
	WorkoutFlexibility: 2,
	WorkoutFunctional:  6,
}

const defaultCaloriesPerMinute = 4

// intensityFactor scales energy expenditure by training experience.
func intensityFactor(level ExperienceLevel) float64 {
	switch level {
	case ExperienceAdvanced:
		return 1.3
	case ExperienceIntermediate:
		return 1.1
	default:
		return 1.0
	}
}

// CaloriesBurned estimates the energy cost of a session in kcal. The
// per-minute base rate depends on the workout type, scaled by duration,
// experience level and a body-weight factor normalized at 70 kg. A
// non-positive duration defaults to 60 minutes.
func CaloriesBurned(workoutType WorkoutType, durationMin int, level ExperienceLevel, weightKg float64) int {
	perMin, ok := caloriesPerMinute[workoutType]
	if !ok {
		perMin = defaultCaloriesPerMinute
	}
	if durationMin <= 0 {
		durationMin = 60
	}
	return int(math.Round(perMin * float64(durationMin) * intensityFactor(level) * (weightKg / 70)))
}

// muscleRecoveryHours lists the baseline recovery window per muscle
// group for a beginner. Larger groups need longer windows.
var muscleRecoveryHours = map[string]float64{
	"chest":    48,
	"back":     48,
	"shoulder": 24,
	"biceps":   24,
	"triceps":  24,
	"leg":      72,
	"glute":    48,
	"abdomen":  24,
}

const defaultRecoveryHours = 24

// recoveryIntensity maps training experience to how hard a session taxes
// the trained muscles. More experienced lifters train closer to failure.
func recoveryIntensity(level ExperienceLevel) float64 {
	switch level {
	case ExperienceAdvanced:
		return 3
	case ExperienceIntermediate:
		return 2
	default:
		return 1
	}
}

// RecoveryHours estimates how many hours the listed muscle groups need
// before they are ready to train again. The slowest muscle in the list
// sets the baseline; an empty list falls back to the default window.
// Lifters over 40 recover about 20% slower.
func RecoveryHours(muscleGroups []string, level ExperienceLevel, age int) int {
	base := float64(defaultRecoveryHours)
	for _, group := range muscleGroups {
		hours, ok := muscleRecoveryHours[normalizeMuscleGroup(group)]
		if !ok {
			hours = defaultRecoveryHours
		}
		if hours > base {
			base = hours
		}
	}

	hours := base * recoveryIntensity(level)
	if age > 40 {
		hours *= 1.2
	}
	return int(math.Round(hours))
}

func normalizeMuscleGroup(group string) string {
	return strings.ToLower(strings.TrimSpace(group))
}
