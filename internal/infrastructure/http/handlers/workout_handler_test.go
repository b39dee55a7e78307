package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/api/internal/domain/workout"
	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/pkg/errors"
)

type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) Create(ctx context.Context, userID uuid.UUID, cmd inbound.CreateWorkoutCommand) (*workout.Workout, error) {
	args := m.Called(ctx, userID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockWorkoutService) GetByID(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error) {
	args := m.Called(ctx, userID, workoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockWorkoutService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*workout.Workout, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*workout.Workout), args.Int(1), args.Error(2)
}

func (m *MockWorkoutService) Update(ctx context.Context, userID, workoutID uuid.UUID, cmd inbound.CreateWorkoutCommand) (*workout.Workout, error) {
	args := m.Called(ctx, userID, workoutID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockWorkoutService) EstimateMetrics(ctx context.Context, userID uuid.UUID, cmd inbound.EstimateWorkoutCommand) (*inbound.WorkoutEstimate, error) {
	args := m.Called(ctx, userID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.WorkoutEstimate), args.Error(1)
}

func (m *MockWorkoutService) CompleteExercise(ctx context.Context, userID, workoutID uuid.UUID, exerciseName string) (*workout.Workout, error) {
	args := m.Called(ctx, userID, workoutID, exerciseName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockWorkoutService) ResetProgress(ctx context.Context, userID, workoutID uuid.UUID) (*workout.Workout, error) {
	args := m.Called(ctx, userID, workoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockWorkoutService) Delete(ctx context.Context, userID, workoutID uuid.UUID) error {
	args := m.Called(ctx, userID, workoutID)
	return args.Error(0)
}

// newWorkoutRouter injects the caller identity the way the auth
// middleware would
func newWorkoutRouter(svc inbound.WorkoutService, userID uuid.UUID) *gin.Engine {
	h := NewWorkoutHandler(svc, validator.New(validator.WithRequiredStructEnabled()))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID.String())
		c.Next()
	})
	r.GET("/workouts", h.List)
	r.GET("/workouts/:id", h.Get)
	r.DELETE("/workouts/:id", h.Delete)
	return r
}

func testWorkout(t *testing.T, userID uuid.UUID) *workout.Workout {
	t.Helper()
	w, err := workout.NewWorkout(userID, "Treino A", "hypertrophy", []workout.Exercise{
		{Name: "Supino reto", MuscleGroup: "chest", Sets: 4, Reps: 10},
	}, 3, 60)
	require.NoError(t, err)
	return w
}

func TestWorkoutHandler_GetReturnsWorkout(t *testing.T) {
	userID := uuid.New()
	svc := new(MockWorkoutService)
	w := testWorkout(t, userID)
	svc.On("GetByID", mock.Anything, userID, w.ID()).Return(w, nil)

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+w.ID().String(), nil)
	rec := httptest.NewRecorder()
	newWorkoutRouter(svc, userID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data WorkoutResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Treino A", body.Data.Name)
	assert.Len(t, body.Data.Exercises, 1)
}

func TestWorkoutHandler_GetRejectsMalformedID(t *testing.T) {
	svc := new(MockWorkoutService)

	req := httptest.NewRequest(http.MethodGet, "/workouts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	newWorkoutRouter(svc, uuid.New()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID")
}

func TestWorkoutHandler_GetMapsNotFoundTo404(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	svc := new(MockWorkoutService)
	svc.On("GetByID", mock.Anything, userID, workoutID).
		Return(nil, errors.NewWorkoutNotFoundError(workoutID.String()))

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+workoutID.String(), nil)
	rec := httptest.NewRecorder()
	newWorkoutRouter(svc, userID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkoutHandler_ListForwardsPagination(t *testing.T) {
	userID := uuid.New()
	svc := new(MockWorkoutService)
	svc.On("List", mock.Anything, userID, 5, 10).
		Return([]*workout.Workout{testWorkout(t, userID)}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/workouts?offset=5&limit=10", nil)
	rec := httptest.NewRecorder()
	newWorkoutRouter(svc, userID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Total  int `json:"total"`
			Offset int `json:"offset"`
			Limit  int `json:"limit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Total)
	assert.Equal(t, 5, body.Data.Offset)
}

func TestWorkoutHandler_Delete(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	svc := new(MockWorkoutService)
	svc.On("Delete", mock.Anything, userID, workoutID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/workouts/"+workoutID.String(), nil)
	rec := httptest.NewRecorder()
	newWorkoutRouter(svc, userID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
