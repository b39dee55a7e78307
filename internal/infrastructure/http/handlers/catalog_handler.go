package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

const defaultCatalogLimit = 20

// CatalogHandler exposes the external exercise and ingredient catalogs
// for client-side browsing
type CatalogHandler struct {
	exercises outbound.ExerciseCatalog
	foods     outbound.FoodCatalog
}

func NewCatalogHandler(exercises outbound.ExerciseCatalog, foods outbound.FoodCatalog) *CatalogHandler {
	return &CatalogHandler{exercises: exercises, foods: foods}
}

// Exercises handles GET /catalog/exercises. Exactly one of muscleGroup
// or equipment selects the lookup.
func (h *CatalogHandler) Exercises(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultCatalogLimit)))
	if limit <= 0 {
		limit = defaultCatalogLimit
	}

	muscleGroup := c.Query("muscleGroup")
	equipment := c.Query("equipment")

	var (
		items []outbound.CatalogExercise
		err   error
	)
	switch {
	case muscleGroup != "":
		items, err = h.exercises.ByMuscleGroup(c.Request.Context(), muscleGroup, limit)
	case equipment != "":
		items, err = h.exercises.ByEquipment(c.Request.Context(), equipment, limit)
	default:
		response.Error(c, errors.NewInvalidParametersError("Either muscleGroup or equipment is required"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// ExerciseByID handles GET /catalog/exercises/:id
func (h *CatalogHandler) ExerciseByID(c *gin.Context) {
	exercise, err := h.exercises.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, exercise)
}

// BodyParts handles GET /catalog/bodyparts
func (h *CatalogHandler) BodyParts(c *gin.Context) {
	parts, err := h.exercises.BodyParts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, parts)
}

// EquipmentTypes handles GET /catalog/equipment
func (h *CatalogHandler) EquipmentTypes(c *gin.Context) {
	equipment, err := h.exercises.EquipmentTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, equipment)
}

// Foods handles GET /catalog/foods
func (h *CatalogHandler) Foods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, errors.NewInvalidParametersError("query is required"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultCatalogLimit)))
	if limit <= 0 {
		limit = defaultCatalogLimit
	}

	items, err := h.foods.SearchIngredient(c.Request.Context(), query, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// FoodByID handles GET /catalog/foods/:id
func (h *CatalogHandler) FoodByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, errors.NewInvalidParametersError("Invalid ingredient id"))
		return
	}

	food, err := h.foods.IngredientByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, food)
}
