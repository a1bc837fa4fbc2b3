package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor/internal/domain"
	"tailor/internal/service"
)

// ExportHandler renders a tailored resume as a downloadable file. Nothing is
// persisted server-side, so the request body carries the text to export.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportRequest is the JSON body for export endpoints.
type ExportRequest struct {
	Resume string `json:"resume" binding:"required"`
}

// Text handles POST /api/v1/exports/txt
// @Summary Download a tailored resume as plain text
// @Tags exports
// @Accept json
// @Produce plain
// @Param body body ExportRequest true "Resume text to export"
// @Success 200 {string} string "Resume as text/plain attachment"
// @Failure 400 {object} APIResponse "Missing resume text"
// @Router /exports/txt [post]
func (h *ExportHandler) Text(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "resume field is required")
		return
	}

	data, err := h.exportService.Text(req.Resume)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ATS_Resume.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// Docx handles POST /api/v1/exports/docx
// @Summary Download a tailored resume as a .docx document
// @Tags exports
// @Accept json
// @Produce octet-stream
// @Param body body ExportRequest true "Resume text to export"
// @Success 200 {string} string "Resume as .docx attachment"
// @Failure 400 {object} APIResponse "Missing resume text"
// @Router /exports/docx [post]
func (h *ExportHandler) Docx(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "resume field is required")
		return
	}

	data, err := h.exportService.Docx(req.Resume)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ATS_Resume.docx"`)
	c.Data(http.StatusOK, domain.AllowedFileTypes[domain.FileTypeDOCX], data)
}
