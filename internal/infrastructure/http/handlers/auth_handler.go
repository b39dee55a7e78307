package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
)

// AuthHandler exposes registration and the token lifecycle
type AuthHandler struct {
	auth     inbound.AuthService
	validate *validator.Validate
}

func NewAuthHandler(auth inbound.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: auth, validate: validate}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var cmd inbound.RegisterCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.auth.Register(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toUserResponse(u))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var cmd inbound.LoginCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pair)
}

// Logout handles POST /auth/logout. Requires authentication: the
// refresh token being revoked has to belong to the caller.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req refreshRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), userID, req.RefreshToken); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Logged out")
}
