// Package progress defines body measurement records used for trend analysis
package progress

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Domain errors for progress operations
var (
	ErrInvalidWeight  = errors.New("weight must be between 30 and 300 kg")
	ErrInvalidBodyFat = errors.New("body fat must be between 1 and 70 percent")
	ErrFutureDate     = errors.New("record date cannot be in the future")
	ErrRecordNotFound = errors.New("progress record not found")
)

// Measurements holds optional circumference measurements in centimeters
type Measurements struct {
	WaistCm *float64
	ChestCm *float64
	HipsCm  *float64
	ArmCm   *float64
	ThighCm *float64
}

// Record is one dated body measurement entry
type Record struct {
	id             uuid.UUID
	userID         uuid.UUID
	date           time.Time
	weightKg       float64
	bodyFatPercent *float64
	measurements   Measurements
	workoutsDone   int
	notes          string
	createdAt      time.Time
}

// NewRecord creates a progress record with validation
func NewRecord(userID uuid.UUID, date time.Time, weightKg float64, bodyFatPercent *float64, measurements Measurements, workoutsDone int, notes string) (*Record, error) {
	if weightKg < 30 || weightKg > 300 {
		return nil, ErrInvalidWeight
	}
	if bodyFatPercent != nil && (*bodyFatPercent < 1 || *bodyFatPercent > 70) {
		return nil, ErrInvalidBodyFat
	}
	if date.After(time.Now().Add(24 * time.Hour)) {
		return nil, ErrFutureDate
	}

	return &Record{
		id:             uuid.New(),
		userID:         userID,
		date:           date,
		weightKg:       weightKg,
		bodyFatPercent: bodyFatPercent,
		measurements:   measurements,
		workoutsDone:   workoutsDone,
		notes:          notes,
		createdAt:      time.Now(),
	}, nil
}

// Reconstruct rebuilds a record from persisted state without validation
func Reconstruct(
	id, userID uuid.UUID,
	date time.Time,
	weightKg float64,
	bodyFatPercent *float64,
	measurements Measurements,
	workoutsDone int,
	notes string,
	createdAt time.Time,
) *Record {
	return &Record{
		id:             id,
		userID:         userID,
		date:           date,
		weightKg:       weightKg,
		bodyFatPercent: bodyFatPercent,
		measurements:   measurements,
		workoutsDone:   workoutsDone,
		notes:          notes,
		createdAt:      createdAt,
	}
}

func (r *Record) ID() uuid.UUID             { return r.id }
func (r *Record) UserID() uuid.UUID         { return r.userID }
func (r *Record) Date() time.Time           { return r.date }
func (r *Record) WeightKg() float64         { return r.weightKg }
func (r *Record) BodyFatPercent() *float64  { return r.bodyFatPercent }
func (r *Record) Measurements() Measurements { return r.measurements }
func (r *Record) WorkoutsDone() int         { return r.workoutsDone }
func (r *Record) Notes() string             { return r.notes }
func (r *Record) CreatedAt() time.Time      { return r.createdAt }

// Trend summarizes a series of records between its oldest and newest
// entries
type Trend struct {
	Records        int       `json:"records"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	StartWeightKg  float64   `json:"startWeightKg"`
	EndWeightKg    float64   `json:"endWeightKg"`
	WeightDeltaKg  float64   `json:"weightDeltaKg"`
	TotalWorkouts  int       `json:"totalWorkouts"`
	WeeklyChangeKg float64   `json:"weeklyChangeKg"`
}

// ComputeTrend derives a weight trend from a set of records. Returns
// false when fewer than two records exist, in which case no meaningful
// trend can be computed.
func ComputeTrend(records []*Record) (Trend, bool) {
	if len(records) < 2 {
		return Trend{Records: len(records)}, false
	}

	sorted := make([]*Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].date.Before(sorted[j].date) })

	first := sorted[0]
	last := sorted[len(sorted)-1]

	totalWorkouts := 0
	for _, r := range sorted {
		totalWorkouts += r.workoutsDone
	}

	delta := last.weightKg - first.weightKg
	span := last.date.Sub(first.date)
	weekly := 0.0
	if span > 0 {
		weekly = delta / (span.Hours() / (24 * 7))
		weekly = math.Round(weekly*100) / 100
	}

	return Trend{
		Records:        len(sorted),
		From:           first.date,
		To:             last.date,
		StartWeightKg:  first.weightKg,
		EndWeightKg:    last.weightKg,
		WeightDeltaKg:  math.Round(delta*100) / 100,
		TotalWorkouts:  totalWorkouts,
		WeeklyChangeKg: weekly,
	}, true
}
