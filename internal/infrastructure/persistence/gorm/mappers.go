package gorm

import (
	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/domain/workout"
)

func userToModel(u *user.User) *UserModel {
	model := &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
		LastLoginAt:  u.LastLoginAt(),
	}

	if p := u.Profile(); p != nil {
		model.Profile = &UserProfileModel{
			Age:             p.Age,
			Gender:          string(p.Gender),
			HeightCm:        p.HeightCm,
			WeightKg:        p.WeightKg,
			Goal:            string(p.Goal),
			ActivityLevel:   string(p.ActivityLevel),
			ExperienceLevel: string(p.ExperienceLevel),
			Locale:          string(p.Locale),
		}
	}

	return model
}

func modelToUser(m *UserModel) *user.User {
	var profile *user.Profile
	// embedded columns always scan; Age zero means no profile was saved
	if m.Profile != nil && m.Profile.Age > 0 {
		profile = &user.Profile{
			Age:             m.Profile.Age,
			Gender:          fitness.Gender(m.Profile.Gender),
			HeightCm:        m.Profile.HeightCm,
			WeightKg:        m.Profile.WeightKg,
			Goal:            fitness.Goal(m.Profile.Goal),
			ActivityLevel:   fitness.ActivityLevel(m.Profile.ActivityLevel),
			ExperienceLevel: fitness.ExperienceLevel(m.Profile.ExperienceLevel),
			Locale:          fitness.Locale(m.Profile.Locale),
		}
	}

	return user.Reconstruct(
		m.ID,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.IsActive,
		user.Role(m.Role),
		profile,
		m.CreatedAt,
		m.UpdatedAt,
		m.LastLoginAt,
	)
}

func workoutToModel(w *workout.Workout) *WorkoutModel {
	exercises := make(ExerciseList, 0, len(w.Exercises()))
	for _, e := range w.Exercises() {
		exercises = append(exercises, ExerciseDocument{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Notes:       e.Notes,
			Completed:   e.Completed,
		})
	}

	return &WorkoutModel{
		ID:               w.ID(),
		UserID:           w.UserID(),
		Name:             w.Name(),
		Type:             string(w.Type()),
		Description:      w.Description(),
		Exercises:        exercises,
		FrequencyPerWeek: w.FrequencyPerWeek(),
		DurationMinutes:  w.DurationMinutes(),
		CaloriesBurned:   w.CaloriesBurned(),
		RecoveryHours:    w.RecoveryHours(),
		AIGenerated:      w.IsAIGenerated(),
		CreatedAt:        w.CreatedAt(),
		UpdatedAt:        w.UpdatedAt(),
	}
}

func modelToWorkout(m *WorkoutModel) *workout.Workout {
	exercises := make([]workout.Exercise, 0, len(m.Exercises))
	for _, e := range m.Exercises {
		exercises = append(exercises, workout.Exercise{
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Notes:       e.Notes,
			Completed:   e.Completed,
		})
	}

	return workout.Reconstruct(
		m.ID,
		m.UserID,
		m.Name,
		fitness.WorkoutType(m.Type),
		m.Description,
		exercises,
		m.FrequencyPerWeek,
		m.DurationMinutes,
		m.CaloriesBurned,
		m.RecoveryHours,
		m.AIGenerated,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func dietToModel(d *diet.Diet) *DietModel {
	meals := make(MealList, 0, len(d.Meals()))
	for _, meal := range d.Meals() {
		foods := make([]FoodDocument, 0, len(meal.Foods))
		for _, f := range meal.Foods {
			foods = append(foods, FoodDocument{
				Name:          f.Name,
				QuantityGrams: f.QuantityGrams,
				Calories:      f.Calories,
				ProteinGrams:  f.ProteinGrams,
				CarbsGrams:    f.CarbsGrams,
				FatGrams:      f.FatGrams,
			})
		}
		meals = append(meals, MealDocument{
			Name:     meal.Name,
			Type:     string(meal.Type),
			Time:     meal.Time,
			Foods:    foods,
			Consumed: meal.Consumed,
		})
	}

	macros := d.Macros()
	return &DietModel{
		ID:            d.ID(),
		UserID:        d.UserID(),
		Name:          d.Name(),
		Goal:          string(d.Goal()),
		DailyCalories: d.DailyCalories(),
		ProteinGrams:  macros.ProteinGrams,
		CarbsGrams:    macros.CarbsGrams,
		FatGrams:      macros.FatGrams,
		Meals:         meals,
		AIGenerated:   d.IsAIGenerated(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

func modelToDiet(m *DietModel) *diet.Diet {
	meals := make([]diet.Meal, 0, len(m.Meals))
	for _, meal := range m.Meals {
		foods := make([]diet.Food, 0, len(meal.Foods))
		for _, f := range meal.Foods {
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
			Name:     meal.Name,
			Type:     diet.MealType(meal.Type),
			Time:     meal.Time,
			Foods:    foods,
			Consumed: meal.Consumed,
		})
	}

	return diet.Reconstruct(
		m.ID,
		m.UserID,
		m.Name,
		fitness.Goal(m.Goal),
		m.DailyCalories,
		fitness.MacroTargets{
			ProteinGrams: m.ProteinGrams,
			CarbsGrams:   m.CarbsGrams,
			FatGrams:     m.FatGrams,
		},
		meals,
		m.AIGenerated,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func progressToModel(r *progress.Record) *ProgressModel {
	measurements := r.Measurements()
	return &ProgressModel{
		ID:             r.ID(),
		UserID:         r.UserID(),
		Date:           r.Date(),
		WeightKg:       r.WeightKg(),
		BodyFatPercent: r.BodyFatPercent(),
		WaistCm:        measurements.WaistCm,
		ChestCm:        measurements.ChestCm,
		HipsCm:         measurements.HipsCm,
		ArmCm:          measurements.ArmCm,
		ThighCm:        measurements.ThighCm,
		WorkoutsDone:   r.WorkoutsDone(),
		Notes:          r.Notes(),
		CreatedAt:      r.CreatedAt(),
	}
}

func modelToProgress(m *ProgressModel) *progress.Record {
	return progress.Reconstruct(
		m.ID,
		m.UserID,
		m.Date,
		m.WeightKg,
		m.BodyFatPercent,
		progress.Measurements{
			WaistCm: m.WaistCm,
			ChestCm: m.ChestCm,
			HipsCm:  m.HipsCm,
			ArmCm:   m.ArmCm,
			ThighCm: m.ThighCm,
		},
		m.WorkoutsDone,
		m.Notes,
		m.CreatedAt,
	)
}
