package gorm

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

func isNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}

// UserRepository implements outbound.UserRepository using GORM
type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new GORM user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) outbound.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.Named("user-repository"),
	}
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return errors.NewDatabaseError("create user", err)
	}
	return nil
}

// Update persists changes to an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", model.ID).
		Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		r.logger.Error("failed to update user", zap.Error(result.Error))
		return errors.NewDatabaseError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewUserNotFoundError(u.ID().String())
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewDatabaseError("delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewUserNotFoundError(id.String())
	}
	return nil
}

// FindByID loads a user by id
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewUserNotFoundError(id.String())
		}
		return nil, errors.NewDatabaseError("find user", err)
	}
	return modelToUser(&model), nil
}

// FindByEmail loads a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewUserNotFoundError(email)
		}
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	return modelToUser(&model), nil
}

// Exists reports whether a user with the given id exists
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.NewDatabaseError("check user exists", err)
	}
	return count > 0, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).
		Update("last_login_at", now).Error
	if err != nil {
		return errors.NewDatabaseError("update last login", err)
	}
	return nil
}
