// Package gorm provides GORM model definitions and repositories
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Email        string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string            `gorm:"type:varchar(255);not null"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	IsActive     bool              `gorm:"default:true"`
	Role         string            `gorm:"type:varchar(50);default:'user'"`
	Profile      *UserProfileModel `gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time

	// Relationships
	Workouts []WorkoutModel  `gorm:"foreignKey:UserID"`
	Diets    []DietModel     `gorm:"foreignKey:UserID"`
	Progress []ProgressModel `gorm:"foreignKey:UserID"`
}

// UserProfileModel represents the embedded fitness profile. A row with
// profile_age = 0 means the user has not completed onboarding yet.
type UserProfileModel struct {
	Age             int     `gorm:"default:0"`
	Gender          string  `gorm:"type:varchar(20)"`
	HeightCm        float64 `gorm:"default:0"`
	WeightKg        float64 `gorm:"default:0"`
	Goal            string  `gorm:"type:varchar(50)"`
	ActivityLevel   string  `gorm:"type:varchar(50)"`
	ExperienceLevel string  `gorm:"type:varchar(50)"`
	Locale          string  `gorm:"type:varchar(10)"`
}

// WorkoutModel represents the GORM model for workout plans
type WorkoutModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(50);not null;index"`
	Description string    `gorm:"type:text"`

	Exercises ExerciseList `gorm:"type:json"`

	FrequencyPerWeek int `gorm:"default:3"`
	DurationMinutes  int `gorm:"default:60"`
	CaloriesBurned   int `gorm:"default:0"`
	RecoveryHours    int `gorm:"default:0"`

	AIGenerated bool `gorm:"default:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// ExerciseDocument is one exercise stored inside a workout's JSON column
type ExerciseDocument struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes,omitempty"`
	Completed   bool   `json:"completed"`
}

// DietModel represents the GORM model for diet plans
type DietModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Goal   string    `gorm:"type:varchar(50);index"`

	DailyCalories int `gorm:"default:0"`
	ProteinGrams  int `gorm:"default:0"`
	CarbsGrams    int `gorm:"default:0"`
	FatGrams      int `gorm:"default:0"`

	Meals MealList `gorm:"type:json"`

	AIGenerated bool `gorm:"default:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// MealDocument is one meal stored inside a diet's JSON column
type MealDocument struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Time     string         `json:"time"`
	Foods    []FoodDocument `json:"foods"`
	Consumed bool           `json:"consumed"`
}

// FoodDocument is one food item inside a meal document
type FoodDocument struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantityGrams"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"proteinGrams"`
	CarbsGrams    float64 `json:"carbsGrams"`
	FatGrams      float64 `json:"fatGrams"`
}

// ProgressModel represents the GORM model for body measurement records
type ProgressModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_date"`
	Date           time.Time `gorm:"not null;index:idx_progress_user_date"`
	WeightKg       float64   `gorm:"not null"`
	BodyFatPercent *float64
	WaistCm        *float64
	ChestCm        *float64
	HipsCm         *float64
	ArmCm          *float64
	ThighCm        *float64
	WorkoutsDone   int    `gorm:"default:0"`
	Notes          string `gorm:"type:text"`
	CreatedAt      time.Time

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// ExerciseList stores a workout's exercises as a JSON column
type ExerciseList []ExerciseDocument

// Scan implements the sql.Scanner interface
func (e *ExerciseList) Scan(value interface{}) error {
	if value == nil {
		*e = ExerciseList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("cannot scan %T into ExerciseList", value)
	}
}

// Value implements the driver.Valuer interface
func (e ExerciseList) Value() (driver.Value, error) {
	if len(e) == 0 {
		return "[]", nil
	}
	return json.Marshal(e)
}

// MealList stores a diet's meals as a JSON column
type MealList []MealDocument

// Scan implements the sql.Scanner interface
func (m *MealList) Scan(value interface{}) error {
	if value == nil {
		*m = MealList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into MealList", value)
	}
}

// Value implements the driver.Valuer interface
func (m MealList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	return json.Marshal(m)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for WorkoutModel
func (w *WorkoutModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for DietModel
func (d *DietModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ProgressModel
func (p *ProgressModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (WorkoutModel) TableName() string {
	return "workouts"
}

func (DietModel) TableName() string {
	return "diets"
}

func (ProgressModel) TableName() string {
	return "progress_records"
}
