// Package progress contains the body measurement application service
package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/domain/progress"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

const (
	defaultListLimit = 90
	defaultWindow    = 90 * 24 * time.Hour
)

// Service implements inbound.ProgressService
type Service struct {
	records outbound.ProgressRepository
	logger  *zap.Logger
}

// NewService creates the progress service
func NewService(records outbound.ProgressRepository, logger *zap.Logger) inbound.ProgressService {
	return &Service{
		records: records,
		logger:  logger,
	}
}

// Record logs a dated measurement entry
func (s *Service) Record(ctx context.Context, userID uuid.UUID, cmd inbound.RecordProgressCommand) (*progress.Record, error) {
	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}

	measurements := progress.Measurements{
		WaistCm: cmd.WaistCm,
		ChestCm: cmd.ChestCm,
		HipsCm:  cmd.HipsCm,
		ArmCm:   cmd.ArmCm,
		ThighCm: cmd.ThighCm,
	}

	r, err := progress.NewRecord(userID, date, cmd.WeightKg, cmd.BodyFatPercent, measurements, cmd.WorkoutsDone, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.records.Create(ctx, r); err != nil {
		return nil, errors.NewDatabaseError("create progress record", err)
	}

	s.logger.Info("progress recorded",
		zap.String("record_id", r.ID().String()),
		zap.String("user_id", userID.String()),
		zap.Float64("weight_kg", r.WeightKg()))

	return r, nil
}

// List returns the user's records newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*progress.Record, error) {
	if since.IsZero() {
		since = time.Now().Add(-defaultWindow)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := s.records.FindByUserID(ctx, userID, since, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("list progress records", err)
	}
	return items, nil
}

// Trend summarizes the weight trajectory over the window. Fewer than
// two records cannot form a trend.
func (s *Service) Trend(ctx context.Context, userID uuid.UUID, since time.Time) (*progress.Trend, error) {
	if since.IsZero() {
		since = time.Now().Add(-defaultWindow)
	}

	items, err := s.records.FindByUserID(ctx, userID, since, defaultListLimit)
	if err != nil {
		return nil, errors.NewDatabaseError("list progress records", err)
	}

	trend, ok := progress.ComputeTrend(items)
	if !ok {
		return nil, errors.NewInvalidParametersError("at least two records are required to compute a trend")
	}
	return &trend, nil
}

// Delete removes a record owned by the user
func (s *Service) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	r, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return errors.NewNotFoundError("Progress record")
	}
	if r.UserID() != userID {
		return errors.NewNotFoundError("Progress record")
	}

	if err := s.records.Delete(ctx, recordID); err != nil {
		return errors.NewDatabaseError("delete progress record", err)
	}

	s.logger.Info("progress record deleted",
		zap.String("record_id", recordID.String()),
		zap.String("user_id", userID.String()))
	return nil
}
