package gorm

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/api/internal/domain/diet"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// DietRepository implements outbound.DietRepository using GORM
type DietRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDietRepository creates a new GORM diet repository
func NewDietRepository(db *gorm.DB, logger *zap.Logger) outbound.DietRepository {
	return &DietRepository{
		db:     db,
		logger: logger.Named("diet-repository"),
	}
}

// Create persists a new diet plan
func (r *DietRepository) Create(ctx context.Context, d *diet.Diet) error {
	model := dietToModel(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create diet", zap.Error(err))
		return errors.NewDatabaseError("create diet", err)
	}
	return nil
}

// Update persists changes to an existing diet plan
func (r *DietRepository) Update(ctx context.Context, d *diet.Diet) error {
	model := dietToModel(d)
	result := r.db.WithContext(ctx).Model(&DietModel{}).Where("id = ?", model.ID).
		Select("*").Omit("id", "user_id", "created_at", "deleted_at").Updates(model)
	if result.Error != nil {
		r.logger.Error("failed to update diet", zap.Error(result.Error))
		return errors.NewDatabaseError("update diet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewDietNotFoundError(d.ID().String())
	}
	return nil
}

// Delete soft-deletes a diet plan
func (r *DietRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&DietModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewDatabaseError("delete diet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewDietNotFoundError(id.String())
	}
	return nil
}

// FindByID loads a diet plan by id
func (r *DietRepository) FindByID(ctx context.Context, id uuid.UUID) (*diet.Diet, error) {
	var model DietModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewDietNotFoundError(id.String())
		}
		return nil, errors.NewDatabaseError("find diet", err)
	}
	return modelToDiet(&model), nil
}

// FindByUserID returns a page of the user's diets, newest first, with
// the total count
func (r *DietRepository) FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*diet.Diet, int, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&DietModel{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewDatabaseError("count diets", err)
	}

	var models []DietModel
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list diets", err)
	}

	diets := make([]*diet.Diet, 0, len(models))
	for i := range models {
		diets = append(diets, modelToDiet(&models[i]))
	}
	return diets, int(total), nil
}
