package handler

import (
	"github.com/gin-gonic/gin"

	"harvester/internal/service"
)

// ActivityHandler handles recent-scrape history and stats endpoints.
type ActivityHandler struct {
	activity service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activity service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// Recent handles GET /api/v1/activity
func (h *ActivityHandler) Recent(c *gin.Context) {
	records, err := h.activity.Recent(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// ClearRecent handles DELETE /api/v1/activity
func (h *ActivityHandler) ClearRecent(c *gin.Context) {
	if err := h.activity.ClearRecent(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}

// Stats handles GET /api/v1/stats
func (h *ActivityHandler) Stats(c *gin.Context) {
	stats, err := h.activity.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// ResetStats handles DELETE /api/v1/stats
func (h *ActivityHandler) ResetStats(c *gin.Context) {
	if err := h.activity.ResetStats(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"reset": true})
}
