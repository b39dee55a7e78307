package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/infrastructure/http/response"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/pkg/errors"
)

// ProgressHandler exposes body measurement logging and trend queries
type ProgressHandler struct {
	records  inbound.ProgressService
	validate *validator.Validate
}

func NewProgressHandler(records inbound.ProgressService, validate *validator.Validate) *ProgressHandler {
	return &ProgressHandler{records: records, validate: validate}
}

// Record handles POST /progress
func (h *ProgressHandler) Record(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var cmd inbound.RecordProgressCommand
	if err := bindJSON(c, h.validate, &cmd); err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.records.Record(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toProgressResponse(r))
}

// sinceParam reads the optional since query parameter as an RFC 3339
// timestamp or a plain date. Zero time means "use the default window".
func sinceParam(c *gin.Context) (time.Time, error) {
	raw := c.Query("since")
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewInvalidParametersError("since must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// List handles GET /progress
func (h *ProgressHandler) List(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	since, err := sinceParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	_, limit := paginationParams(c)

	records, err := h.records.List(c.Request.Context(), userID, since, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProgressResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toProgressResponse(r))
	}
	response.OK(c, items)
}

// Trend handles GET /progress/trend
func (h *ProgressHandler) Trend(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	since, err := sinceParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	trend, err := h.records.Trend(c.Request.Context(), userID, since)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, trend)
}

// Delete handles DELETE /progress/:id
func (h *ProgressHandler) Delete(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	recordID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.records.Delete(c.Request.Context(), userID, recordID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Progress record deleted")
}
