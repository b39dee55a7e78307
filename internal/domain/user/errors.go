package user

import "errors"

// Domain errors for user operations

var (
	// Entity validation errors
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrNameTooLong     = errors.New("name must not exceed 100 characters")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")

	// Profile validation errors
	ErrInvalidAge           = errors.New("age must be between 16 and 100")
	ErrInvalidHeight        = errors.New("height must be between 100 and 250 cm")
	ErrInvalidWeight        = errors.New("weight must be between 30 and 300 kg")
	ErrInvalidGoal          = errors.New("invalid training goal")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidExperience    = errors.New("invalid experience level")

	ErrUserNotFound = errors.New("user not found")
)
