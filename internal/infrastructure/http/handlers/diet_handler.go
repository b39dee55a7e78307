package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
)

// DietHandler exposes diet plan CRUD and consumption tracking
type DietHandler struct {
	diets    inbound.DietService
	validate *validator.Validate
}

func NewDietHandler(diets inbound.DietService, validate *validator.Validate) *DietHandler {
	return &DietHandler{diets: diets, validate: validate}
}

// Create handles POST /diets
func (h *DietHandler) Create(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.CreateDietCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.diets.Create(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toDietResponse(d))
}

// List handles GET /diets
func (h *DietHandler) List(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	offset, limit := paginationParams(c)
	diets, total, err := h.diets.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DietResponse, 0, len(diets))
	for _, d := range diets {
		items = append(items, toDietResponse(d))
	}
	response.OK(c, PageResponse{Items: items, Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /diets/:id
func (h *DietHandler) Get(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dietID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.diets.GetByID(c.Request.Context(), userID, dietID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toDietResponse(d))
}

// Update handles PUT /diets/:id
func (h *DietHandler) Update(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dietID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.CreateDietCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.diets.Update(c.Request.Context(), userID, dietID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toDietResponse(d))
}

type consumeMealRequest struct {
	Meal string `json:"meal" validate:"required"`
}

// ConsumeMeal handles POST /diets/:id/consume
func (h *DietHandler) ConsumeMeal(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dietID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req consumeMealRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.diets.ConsumeMeal(c.Request.Context(), userID, dietID, req.Meal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toDietResponse(d))
}

// ResetConsumption handles POST /diets/:id/reset
func (h *DietHandler) ResetConsumption(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dietID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.diets.ResetConsumption(c.Request.Context(), userID, dietID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toDietResponse(d))
}

// Delete handles DELETE /diets/:id
func (h *DietHandler) Delete(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dietID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.diets.Delete(c.Request.Context(), userID, dietID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Diet deleted")
}
