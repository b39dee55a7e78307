// Package response defines the standard API response envelope
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/api/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse carries a machine-readable error code alongside the
// human-readable message
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// OK writes a 200 response with the given data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// Created writes a 201 response with the given data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// Message writes a 200 response with only a message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message})
}

// Error writes an error response. Typed application errors map to
// their HTTP status; anything else becomes a 500 without leaking the
// internal message.
func Error(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), APIResponse{
			Success: false,
			Error: &ErrorResponse{
				Code:    string(appErr.Code),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    string(errors.CodeInternal),
			Message: "An unexpected error occurred",
		},
	})
}

// BadRequest writes a 400 for malformed request bodies
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    string(errors.CodeBadRequest),
			Message: message,
		},
	})
}
