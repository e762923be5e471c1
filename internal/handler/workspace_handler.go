package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harvester/internal/service"
)

// WorkspaceHandler handles workspace preparation and extraction endpoints.
type WorkspaceHandler struct {
	workspace service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspace service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspace: workspace}
}

type prepareRequest struct {
	URL    string `json:"url" binding:"required,url"`
	APIKey string `json:"api_key"`
}

// Prepare handles POST /api/v1/workspace/prepare
func (h *WorkspaceHandler) Prepare(c *gin.Context) {
	var req prepareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "url is required and must be a valid URL")
		return
	}

	view, err := h.workspace.Prepare(c.Request.Context(), req.URL, req.APIKey)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Extract handles POST /api/v1/workspace/extract
func (h *WorkspaceHandler) Extract(c *gin.Context) {
	var input service.ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid extraction payload")
		return
	}

	result, err := h.workspace.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
