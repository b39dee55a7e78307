package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// ProgressRepository implements outbound.ProgressRepository using GORM
type ProgressRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new GORM progress repository
func NewProgressRepository(db *gorm.DB, logger *zap.Logger) outbound.ProgressRepository {
	return &ProgressRepository{
		db:     db,
		logger: logger.Named("progress-repository"),
	}
}

// Create persists a new progress record
func (r *ProgressRepository) Create(ctx context.Context, record *progress.Record) error {
	model := progressToModel(record)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create progress record", zap.Error(err))
		return errors.NewDatabaseError("create progress record", err)
	}
	return nil
}

// Delete removes a progress record
func (r *ProgressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ProgressModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewDatabaseError("delete progress record", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Progress record")
	}
	return nil
}

// FindByID loads a progress record by id
func (r *ProgressRepository) FindByID(ctx context.Context, id uuid.UUID) (*progress.Record, error) {
	var model ProgressModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewNotFoundError("Progress record")
		}
		return nil, errors.NewDatabaseError("find progress record", err)
	}
	return modelToProgress(&model), nil
}

// FindByUserID returns the user's records since the given time, newest
// first
func (r *ProgressRepository) FindByUserID(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*progress.Record, error) {
	var models []ProgressModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("list progress records", err)
	}

	records := make([]*progress.Record, 0, len(models))
	for i := range models {
		records = append(records, modelToProgress(&models[i]))
	}
	return records, nil
}
