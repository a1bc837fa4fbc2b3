package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor/internal/domain"
	"tailor/internal/generator"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var rlErr *generator.RateLimitError
	switch {
	case errors.Is(err, domain.ErrMissingResume):
		return http.StatusBadRequest, "MISSING_RESUME", "upload a resume or paste your resume text"
	case errors.Is(err, domain.ErrMissingJobDescription):
		return http.StatusBadRequest, "MISSING_JOB_DESCRIPTION", "paste the job description"
	case errors.Is(err, domain.ErrCredentialMissing):
		return http.StatusServiceUnavailable, "CREDENTIAL_MISSING", "no generator API key configured; set TAILOR_GENERATOR_PRIMARY_API_KEY"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, docx, txt"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED", err.Error()
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests, "RATE_LIMITED", "generation providers are rate limited; retry later"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return http.StatusBadGateway, "GENERATION_FAILED", "the model returned an empty completion"
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, "GENERATION_FAILED", "text generation failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
