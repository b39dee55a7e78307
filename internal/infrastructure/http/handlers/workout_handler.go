package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
)

// WorkoutHandler exposes workout plan CRUD and completion tracking
type WorkoutHandler struct {
	workouts inbound.WorkoutService
	validate *validator.Validate
}

func NewWorkoutHandler(workouts inbound.WorkoutService, validate *validator.Validate) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, validate: validate}
}

// Create handles POST /workouts
func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.CreateWorkoutCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.workouts.Create(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toWorkoutResponse(w))
}

// List handles GET /workouts
func (h *WorkoutHandler) List(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	offset, limit := paginationParams(c)
	workouts, total, err := h.workouts.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		items = append(items, toWorkoutResponse(w))
	}
	response.OK(c, PageResponse{Items: items, Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /workouts/:id
func (h *WorkoutHandler) Get(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	workoutID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.workouts.GetByID(c.Request.Context(), userID, workoutID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWorkoutResponse(w))
}

// Update handles PUT /workouts/:id
func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	workoutID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.CreateWorkoutCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.workouts.Update(c.Request.Context(), userID, workoutID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWorkoutResponse(w))
}

// Estimate handles POST /coach/estimate. It runs the calculators for a
// workout definition without saving anything.
func (h *WorkoutHandler) Estimate(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.EstimateWorkoutCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	estimate, err := h.workouts.EstimateMetrics(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, estimate)
}

type completeExerciseRequest struct {
	Exercise string `json:"exercise" validate:"required"`
}

// CompleteExercise handles POST /workouts/:id/complete
func (h *WorkoutHandler) CompleteExercise(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	workoutID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req completeExerciseRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.workouts.CompleteExercise(c.Request.Context(), userID, workoutID, req.Exercise)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWorkoutResponse(w))
}

// ResetProgress handles POST /workouts/:id/reset
func (h *WorkoutHandler) ResetProgress(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	workoutID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.workouts.ResetProgress(c.Request.Context(), userID, workoutID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWorkoutResponse(w))
}

// Delete handles DELETE /workouts/:id
func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	workoutID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.workouts.Delete(c.Request.Context(), userID, workoutID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Workout deleted")
}
