package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
)

// UserHandler exposes the authenticated user's account and profile
type UserHandler struct {
	users    inbound.UserService
	validate *validator.Validate
}

func NewUserHandler(users inbound.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{users: users, validate: validate}
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toUserResponse(u))
}

// UpdateProfile handles PUT /users/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.UpdateProfileCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toUserResponse(u))
}

// Metrics handles GET /users/me/metrics
func (h *UserHandler) Metrics(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.users.Metrics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Deactivate handles DELETE /users/me
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.users.Deactivate(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Account deactivated")
}
