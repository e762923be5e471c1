package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"harvester/internal/csvexport"
	"harvester/internal/domain"
	"harvester/internal/xlsxexport"
)

// ExportHandler serializes already-extracted rows into downloadable files.
// It takes the table from the request body rather than re-running the
// extraction, so the download always matches what the caller last saw.
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type exportRequest struct {
	Title   string       `json:"title"`
	Columns []string     `json:"columns" binding:"required"`
	Rows    []domain.Row `json:"rows"`
}

// CSV handles POST /api/v1/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "columns are required")
		return
	}

	body := csvexport.Marshal(req.Columns, req.Rows)
	filename := csvexport.BuildFilename(req.Title, "csv")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", append(append([]byte{}, csvexport.UTF8BOM...), body...))
}

// XLSX handles POST /api/v1/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "columns are required")
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, req.Columns, req.Rows); err != nil {
		HandleError(c, err)
		return
	}
	filename := csvexport.BuildFilename(req.Title, "xlsx")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
