// Package diet defines the meal plan domain entity
package diet

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/api/internal/domain/fitness"
)

// Domain errors for diet operations
var (
	ErrNameRequired     = errors.New("diet name is required")
	ErrNoMeals          = errors.New("diet must have at least one meal")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrInvalidMealTime  = errors.New("meal time must be in HH:MM format")
	ErrInvalidCalories  = errors.New("daily calories must be between 800 and 5000")
	ErrMealNotFound     = errors.New("meal not found in diet")
	ErrDietNotFound     = errors.New("diet not found")
	ErrNotDietOwner     = errors.New("only the diet owner can perform this action")
)

// MealType identifies when during the day a meal is eaten
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
	MealSupper    MealType = "supper"
)

// Food is one item inside a meal with its macro breakdown
type Food struct {
	Name          string
	QuantityGrams float64
	Calories      float64
	ProteinGrams  float64
	CarbsGrams    float64
	FatGrams      float64
}

// Meal groups foods at a scheduled time of day
type Meal struct {
	Name     string
	Type     MealType
	Time     string // HH:MM
	Foods    []Food
	Consumed bool
}

// Diet is a daily meal plan with calorie and macro targets
type Diet struct {
	id            uuid.UUID
	userID        uuid.UUID
	name          string
	goal          fitness.Goal
	dailyCalories int
	macros        fitness.MacroTargets
	meals         []Meal
	aiGenerated   bool
	createdAt     time.Time
	updatedAt     time.Time
}

var mealTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validateDiet(name string, dailyCalories int, meals []Meal) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if dailyCalories < 800 || dailyCalories > 5000 {
		return ErrInvalidCalories
	}
	if len(meals) == 0 {
		return ErrNoMeals
	}
	for _, meal := range meals {
		switch meal.Type {
		case MealBreakfast, MealLunch, MealSnack, MealDinner, MealSupper:
		default:
			return ErrInvalidMealType
		}
		if !mealTimePattern.MatchString(meal.Time) {
			return ErrInvalidMealTime
		}
	}
	return nil
}

// NewDiet creates a meal plan with validation. Daily calories outside
// the 800 to 5000 range are rejected as physiologically implausible.
func NewDiet(userID uuid.UUID, name string, goal fitness.Goal, dailyCalories int, macros fitness.MacroTargets, meals []Meal) (*Diet, error) {
	name = strings.TrimSpace(name)
	if err := validateDiet(name, dailyCalories, meals); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Diet{
		id:            uuid.New(),
		userID:        userID,
		name:          name,
		goal:          goal,
		dailyCalories: dailyCalories,
		macros:        macros,
		meals:         meals,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a diet from persisted state without validation
func Reconstruct(
	id, userID uuid.UUID,
	name string,
	goal fitness.Goal,
	dailyCalories int,
	macros fitness.MacroTargets,
	meals []Meal,
	aiGenerated bool,
	createdAt, updatedAt time.Time,
) *Diet {
	return &Diet{
		id:            id,
		userID:        userID,
		name:          name,
		goal:          goal,
		dailyCalories: dailyCalories,
		macros:        macros,
		meals:         meals,
		aiGenerated:   aiGenerated,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d *Diet) ID() uuid.UUID                { return d.id }
func (d *Diet) UserID() uuid.UUID            { return d.userID }
func (d *Diet) Name() string                 { return d.name }
func (d *Diet) Goal() fitness.Goal           { return d.goal }
func (d *Diet) DailyCalories() int           { return d.dailyCalories }
func (d *Diet) Macros() fitness.MacroTargets { return d.macros }
func (d *Diet) Meals() []Meal                { return d.meals }
func (d *Diet) IsAIGenerated() bool          { return d.aiGenerated }
func (d *Diet) CreatedAt() time.Time         { return d.createdAt }
func (d *Diet) UpdatedAt() time.Time         { return d.updatedAt }

// UpdatePlan replaces the plan definition. Replacing the meals also
// discards their consumption state.
func (d *Diet) UpdatePlan(name string, goal fitness.Goal, dailyCalories int, macros fitness.MacroTargets, meals []Meal) error {
	name = strings.TrimSpace(name)
	if err := validateDiet(name, dailyCalories, meals); err != nil {
		return err
	}

	d.name = name
	d.goal = goal
	d.dailyCalories = dailyCalories
	d.macros = macros
	d.meals = meals
	d.updatedAt = time.Now()
	return nil
}

// MarkAIGenerated flags the plan as machine-produced
func (d *Diet) MarkAIGenerated() {
	d.aiGenerated = true
	d.updatedAt = time.Now()
}

// ConsumeMeal marks the named meal as eaten
func (d *Diet) ConsumeMeal(name string) error {
	for i := range d.meals {
		if strings.EqualFold(d.meals[i].Name, name) {
			d.meals[i].Consumed = true
			d.updatedAt = time.Now()
			return nil
		}
	}
	return ErrMealNotFound
}

// ResetConsumption clears consumption marks for a new day
func (d *Diet) ResetConsumption() {
	for i := range d.meals {
		d.meals[i].Consumed = false
	}
	d.updatedAt = time.Now()
}

// Calories sums the planned calories of a meal's foods
func (m Meal) Calories() float64 {
	var total float64
	for _, f := range m.Foods {
		total += f.Calories
	}
	return total
}

// PlannedCalories sums the calories of every meal in the plan
func (d *Diet) PlannedCalories() float64 {
	var total float64
	for _, meal := range d.meals {
		total += meal.Calories()
	}
	return total
}

// ConsumedCalories sums the calories of meals already eaten today
func (d *Diet) ConsumedCalories() float64 {
	var total float64
	for _, meal := range d.meals {
		if meal.Consumed {
			total += meal.Calories()
		}
	}
	return total
}

// ConsumedMacros sums the macros of meals already eaten today
func (d *Diet) ConsumedMacros() fitness.MacroTargets {
	var protein, carbs, fat float64
	for _, meal := range d.meals {
		if !meal.Consumed {
			continue
		}
		for _, f := range meal.Foods {
			protein += f.ProteinGrams
			carbs += f.CarbsGrams
			fat += f.FatGrams
		}
	}
	return fitness.MacroTargets{
		ProteinGrams: int(protein),
		CarbsGrams:   int(carbs),
		FatGrams:     int(fat),
	}
}
