package fitness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantNil  bool
	}{
		{name: "typical adult", heightCm: 170, weightKg: 70, want: 24.2},
		{name: "tall heavy", heightCm: 190, weightKg: 95, want: 26.3},
		{name: "rounds to one decimal", heightCm: 180, weightKg: 81.5, want: 25.2},
		{name: "zero height", heightCm: 0, weightKg: 70, wantNil: true},
		{name: "zero weight", heightCm: 170, weightKg: 0, wantNil: true},
		{name: "negative height", heightCm: -170, weightKg: 70, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMI(tt.heightCm, tt.weightKg)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{16.0, BMIUnderweight},
		{18.49, BMIUnderweight},
		{18.5, BMINormal},
		{24.99, BMINormal},
		{25.0, BMIOverweight},
		{29.99, BMIOverweight},
		{30.0, BMIObesityGrade1},
		{34.99, BMIObesityGrade1},
		{35.0, BMIObesityGrade2},
		{42.0, BMIObesityGrade2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBMI(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestBMR(t *testing.T) {
	t.Run("male coefficients", func(t *testing.T) {
		got := BMR(GenderMale, 80, 180, 30)
		want := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
		assert.InDelta(t, want, got, 0.001)
	})

	t.Run("female coefficients", func(t *testing.T) {
		got := BMR(GenderFemale, 70, 170, 25)
		want := 447.593 + 9.247*70 + 3.098*170 - 4.330*25
		assert.InDelta(t, want, got, 0.001)
	})

	t.Run("non-male uses female coefficients", func(t *testing.T) {
		assert.Equal(t, BMR(GenderFemale, 60, 165, 40), BMR(GenderOther, 60, 165, 40))
	})
}

func TestTDEE(t *testing.T) {
	const bmr = 1500.0

	assert.InDelta(t, 1800.0, TDEE(bmr, ActivitySedentary), 0.001)
	assert.InDelta(t, 2062.5, TDEE(bmr, ActivityLight), 0.001)
	assert.InDelta(t, 2325.0, TDEE(bmr, ActivityModerate), 0.001)
	assert.InDelta(t, 2587.5, TDEE(bmr, ActivityActive), 0.001)
	assert.InDelta(t, 2850.0, TDEE(bmr, ActivityVeryActive), 0.001)

	// unknown levels fall back to moderate
	assert.InDelta(t, 2325.0, TDEE(bmr, ActivityLevel("couch")), 0.001)
}

func TestDailyCalorieNeeds(t *testing.T) {
	const tdee = 2325.4

	assert.Equal(t, 1825, DailyCalorieNeeds(tdee, GoalLoseWeight))
	assert.Equal(t, 2625, DailyCalorieNeeds(tdee, GoalGainMuscle))
	assert.Equal(t, 2325, DailyCalorieNeeds(tdee, GoalMaintain))
	assert.Equal(t, 2125, DailyCalorieNeeds(tdee, GoalCut))
	assert.Equal(t, 2525, DailyCalorieNeeds(tdee, GoalStrength))
	assert.Equal(t, 2325, DailyCalorieNeeds(tdee, Goal("unknown")))
}

func TestDailyCalorieNeedsMonotonicInWeight(t *testing.T) {
	prev := -1
	for weight := 50.0; weight <= 120; weight += 5 {
		bmr := BMR(GenderMale, weight, 178, 32)
		needs := DailyCalorieNeeds(TDEE(bmr, ActivityActive), GoalGainMuscle)
		assert.Greater(t, needs, prev, "weight=%v", weight)
		prev = needs
	}
}

func TestMacros(t *testing.T) {
	t.Run("maintain split at 2000 kcal", func(t *testing.T) {
		got := Macros(2000, GoalMaintain)
		assert.Equal(t, MacroTargets{ProteinGrams: 125, CarbsGrams: 250, FatGrams: 56}, got)
	})

	t.Run("lose weight favors protein", func(t *testing.T) {
		got := Macros(1800, GoalLoseWeight)
		assert.Equal(t, 158, got.ProteinGrams) // 1800*0.35/4
		assert.Equal(t, 158, got.CarbsGrams)
		assert.Equal(t, 60, got.FatGrams)
	})

	t.Run("unknown goal uses maintenance split", func(t *testing.T) {
		assert.Equal(t, Macros(2000, GoalMaintain), Macros(2000, Goal("bulk-forever")))
	})

	t.Run("reconstructed calories within 2 percent", func(t *testing.T) {
		for _, calories := range []int{1500, 2000, 2437, 3100} {
			for goal := range macroSplits {
				m := Macros(calories, goal)
				reconstructed := float64(m.ProteinGrams*4 + m.CarbsGrams*4 + m.FatGrams*9)
				assert.InEpsilon(t, float64(calories), reconstructed, 0.02, "calories=%d goal=%s", calories, goal)
			}
		}
	})
}

func TestEndToEndCalorieChain(t *testing.T) {
	// profile: 25y, 170cm, 70kg, female, lose_weight, moderate
	bmr := BMR(GenderFemale, 70, 170, 25)
	wantBMR := 447.593 + 9.247*70 - 4.330*25 + 3.098*170
	require.InDelta(t, wantBMR, bmr, 0.001)

	tdee := TDEE(bmr, ActivityModerate)
	require.InDelta(t, wantBMR*1.55, tdee, 0.001)

	needs := DailyCalorieNeeds(tdee, GoalLoseWeight)
	assert.Equal(t, int(math.Round(wantBMR*1.55-500)), needs)
}

func TestCaloriesBurned(t *testing.T) {
	tests := []struct {
		name        string
		workoutType WorkoutType
		duration    int
		level       ExperienceLevel
		weightKg    float64
		want        int
	}{
		{name: "cardio hour at reference weight", workoutType: WorkoutCardio, duration: 60, level: ExperienceBeginner, weightKg: 70, want: 480},
		{name: "advanced scales by 1.3", workoutType: WorkoutCardio, duration: 60, level: ExperienceAdvanced, weightKg: 70, want: 624},
		{name: "intermediate scales by 1.1", workoutType: WorkoutStrength, duration: 45, level: ExperienceIntermediate, weightKg: 70, want: 198},
		{name: "body weight scales linearly", workoutType: WorkoutHypertrophy, duration: 60, level: ExperienceBeginner, weightKg: 105, want: 450},
		{name: "missing duration defaults to an hour", workoutType: WorkoutFlexibility, duration: 0, level: ExperienceBeginner, weightKg: 70, want: 120},
		{name: "unknown type uses base rate", workoutType: WorkoutType("crossfit"), duration: 60, level: ExperienceBeginner, weightKg: 70, want: 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CaloriesBurned(tt.workoutType, tt.duration, tt.level, tt.weightKg))
		})
	}
}

func TestRecoveryHours(t *testing.T) {
	tests := []struct {
		name    string
		muscles []string
		level   ExperienceLevel
		age     int
		want    int
	}{
		{name: "legs set the window", muscles: []string{"biceps", "leg"}, level: ExperienceBeginner, age: 30, want: 72},
		{name: "intermediate doubles", muscles: []string{"chest"}, level: ExperienceIntermediate, age: 30, want: 96},
		{name: "advanced triples", muscles: []string{"shoulder"}, level: ExperienceAdvanced, age: 30, want: 72},
		{name: "over forty recovers slower", muscles: []string{"back"}, level: ExperienceBeginner, age: 45, want: 58},
		{name: "empty list uses default window", muscles: nil, level: ExperienceBeginner, age: 30, want: 24},
		{name: "unknown muscle uses default window", muscles: []string{"forearm"}, level: ExperienceBeginner, age: 30, want: 24},
		{name: "case and spacing normalized", muscles: []string{" Leg "}, level: ExperienceBeginner, age: 30, want: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoveryHours(tt.muscles, tt.level, tt.age))
		})
	}
}

func TestMetricsAreDeterministic(t *testing.T) {
	first := DailyCalorieNeeds(TDEE(BMR(GenderMale, 82, 179, 28), ActivityActive), GoalCut)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DailyCalorieNeeds(TDEE(BMR(GenderMale, 82, 179, 28), ActivityActive), GoalCut))
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "perder peso", GoalLabel(LocalePTBR, GoalLoseWeight))
	assert.Equal(t, "hipertrofia", WorkoutTypeLabel(LocalePTBR, WorkoutHypertrophy))
	assert.Equal(t, "moderadamente ativo", ActivityLabel(LocalePTBR, ActivityModerate))
	assert.Equal(t, "glúteo", MuscleLabel(LocalePTBR, "Glute"))
	assert.Equal(t, "obesidade grau 1", BMICategoryLabel(LocalePTBR, BMIObesityGrade1))

	assert.Equal(t, "lose weight", GoalLabel(LocaleEN, GoalLoseWeight))

	// unknown locale falls back to pt-BR, unknown values pass through
	assert.Equal(t, "perder peso", GoalLabel(Locale("fr"), GoalLoseWeight))
	assert.Equal(t, "crossfit", WorkoutTypeLabel(LocalePTBR, WorkoutType("crossfit")))
}
