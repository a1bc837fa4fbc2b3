package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailor/internal/domain"
	"tailor/internal/service"
)

// TailorHandler handles the resume tailoring endpoint.
type TailorHandler struct {
	tailorService service.TailorService
}

// NewTailorHandler creates a new TailorHandler.
func NewTailorHandler(tailorService service.TailorService) *TailorHandler {
	return &TailorHandler{tailorService: tailorService}
}

// sectionFormFields maps multipart form field names to canonical section headings.
var sectionFormFields = map[string]domain.SectionName{
	"summary":        domain.SectionSummary,
	"skills":         domain.SectionSkills,
	"experience":     domain.SectionExperience,
	"education":      domain.SectionEducation,
	"certifications": domain.SectionCertifications,
	"projects":       domain.SectionProjects,
}

// Tailor handles POST /api/v1/tailor
// @Summary Tailor a resume to a job description
// @Description Accepts a resume (uploaded PDF/DOCX/TXT, pasted text, or per-section fields) plus a job description, and returns the tailored resume, match report, section breakdown, and ATS lint warnings
// @Tags tailor
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file false "Resume document (PDF, DOCX, or TXT)"
// @Param resume_text formData string false "Pasted resume text (used when no file is supplied or extraction fails)"
// @Param summary formData string false "SUMMARY section text"
// @Param skills formData string false "SKILLS section text"
// @Param experience formData string false "EXPERIENCE section text"
// @Param education formData string false "EDUCATION section text"
// @Param certifications formData string false "CERTIFICATIONS section text"
// @Param projects formData string false "PROJECTS section text"
// @Param job_description formData string true "Job description text"
// @Success 200 {object} APIResponse{data=domain.TailoredResume} "Tailored resume"
// @Failure 400 {object} APIResponse "Missing resume or job description, or unsupported file"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "Document could not be read"
// @Failure 429 {object} APIResponse "Providers rate limited"
// @Failure 502 {object} APIResponse "Generation failed"
// @Failure 503 {object} APIResponse "No API key configured"
// @Router /tailor [post]
func (h *TailorHandler) Tailor(c *gin.Context) {
	req := service.TailorRequest{
		ResumeText:     c.PostForm("resume_text"),
		JobDescription: c.PostForm("job_description"),
	}

	for field, name := range sectionFormFields {
		if v := c.PostForm(field); strings.TrimSpace(v) != "" {
			if req.SectionFields == nil {
				req.SectionFields = make(map[domain.SectionName]string)
			}
			req.SectionFields[name] = v
		}
	}

	if file, header, err := c.Request.FormFile("resume"); err == nil {
		defer func() { _ = file.Close() }()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "could not read uploaded file")
			return
		}
		req.FileBytes = data
		req.Filename = header.Filename
		req.ContentType = header.Header.Get("Content-Type")
	}

	result, err := h.tailorService.Tailor(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
