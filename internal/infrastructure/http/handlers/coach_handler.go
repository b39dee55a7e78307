package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
)

// CoachHandler exposes the AI coaching endpoints. All of them require
// a completed fitness profile.
type CoachHandler struct {
	coach    inbound.CoachService
	validate *validator.Validate
}

func NewCoachHandler(coach inbound.CoachService, validate *validator.Validate) *CoachHandler {
	return &CoachHandler{coach: coach, validate: validate}
}

// SuggestWorkout handles POST /coach/workout
func (h *CoachHandler) SuggestWorkout(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.SuggestWorkoutCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := h.coach.SuggestWorkout(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// SuggestDiet handles POST /coach/diet
func (h *CoachHandler) SuggestDiet(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.SuggestDietCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := h.coach.SuggestDiet(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// AnalyzeProgress handles GET /coach/progress
func (h *CoachHandler) AnalyzeProgress(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	analysis, err := h.coach.AnalyzeProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, analysis)
}

// Chat handles POST /coach/chat
func (h *CoachHandler) Chat(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.ChatCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	answer, err := h.coach.Chat(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, answer)
}

// EstimateNutrition handles POST /coach/nutrition
func (h *CoachHandler) EstimateNutrition(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.EstimateNutritionCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	estimate, err := h.coach.EstimateNutrition(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, estimate)
}
