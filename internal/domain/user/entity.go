// Package user defines the user domain entity and its fitness profile
package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitforge/api/internal/domain/fitness"
)

// User represents an account in the system
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool
	role         Role
	profile      *Profile
	createdAt    time.Time
	updatedAt    time.Time
	lastLoginAt  *time.Time
}

// Profile contains the fitness attributes that drive metric calculation
// and coaching. A user may exist without one until onboarding finishes.
type Profile struct {
	Age             int
	Gender          fitness.Gender
	HeightCm        float64
	WeightKg        float64
	Goal            fitness.Goal
	ActivityLevel   fitness.ActivityLevel
	ExperienceLevel fitness.ExperienceLevel
	Locale          fitness.Locale
}

// Role represents the role of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewUser creates a new user with validation
func NewUser(email, name, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(name) < 2 {
		return nil, ErrNameTooShort
	}
	if len(name) > 100 {
		return nil, ErrNameTooLong
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooWeak
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: string(hash),
		isActive:     true,
		role:         RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a user from persisted state. It performs no
// validation; the stored state already passed through NewUser or the
// update methods.
func Reconstruct(
	id uuid.UUID,
	email, name, passwordHash string,
	isActive bool,
	role Role,
	profile *Profile,
	createdAt, updatedAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		role:         role,
		profile:      profile,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastLoginAt:  lastLoginAt,
	}
}

// ID returns the user's ID
func (u *User) ID() uuid.UUID { return u.id }

// Email returns the user's email
func (u *User) Email() string { return u.email }

// Name returns the user's name
func (u *User) Name() string { return u.name }

// PasswordHash returns the bcrypt hash for persistence
func (u *User) PasswordHash() string { return u.passwordHash }

// IsActive returns whether the user is active
func (u *User) IsActive() bool { return u.isActive }

// Role returns the user's role
func (u *User) Role() Role { return u.role }

// Profile returns the user's fitness profile, nil before onboarding
func (u *User) Profile() *Profile { return u.profile }

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// LastLoginAt returns when the user last logged in
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// CheckPassword verifies the provided password against the stored hash
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password))
}

// UpdatePassword replaces the stored password hash
func (u *User) UpdatePassword(newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooWeak
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	u.updatedAt = time.Now()
	return nil
}

// UpdateProfile validates and replaces the fitness profile
func (u *User) UpdateProfile(profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if profile.Locale == "" {
		profile.Locale = fitness.LocalePTBR
	}
	u.profile = &profile
	u.updatedAt = time.Now()
	return nil
}

// RecordLogin records a login timestamp
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// Deactivate deactivates the user
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// Validate checks the profile against the accepted measurement ranges
func (p Profile) Validate() error {
	if p.Age < 16 || p.Age > 100 {
		return ErrInvalidAge
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return ErrInvalidHeight
	}
	if p.WeightKg < 30 || p.WeightKg > 300 {
		return ErrInvalidWeight
	}
	switch p.Goal {
	case fitness.GoalLoseWeight, fitness.GoalGainMuscle, fitness.GoalMaintain, fitness.GoalCut, fitness.GoalStrength:
	default:
		return ErrInvalidGoal
	}
	switch p.ActivityLevel {
	case fitness.ActivitySedentary, fitness.ActivityLight, fitness.ActivityModerate, fitness.ActivityActive, fitness.ActivityVeryActive:
	default:
		return ErrInvalidActivityLevel
	}
	switch p.ExperienceLevel {
	case fitness.ExperienceBeginner, fitness.ExperienceIntermediate, fitness.ExperienceAdvanced:
	default:
		return ErrInvalidExperience
	}
	return nil
}

// BMI returns the profile's body mass index, nil when measurements are
// missing
func (p Profile) BMI() *float64 {
	return fitness.BMI(p.HeightCm, p.WeightKg)
}

// BMICategory classifies the profile's BMI, empty when BMI is unknown
func (p Profile) BMICategory() fitness.BMICategory {
	bmi := p.BMI()
	if bmi == nil {
		return ""
	}
	return fitness.ClassifyBMI(*bmi)
}

// BMR returns the profile's basal metabolic rate
func (p Profile) BMR() float64 {
	return fitness.BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
}

// DailyCalorieNeeds returns the goal-adjusted daily calorie target
func (p Profile) DailyCalorieNeeds() int {
	return fitness.DailyCalorieNeeds(fitness.TDEE(p.BMR(), p.ActivityLevel), p.Goal)
}

// MacroTargets returns daily macronutrient targets for the profile
func (p Profile) MacroTargets() fitness.MacroTargets {
	return fitness.Macros(p.DailyCalorieNeeds(), p.Goal)
}
