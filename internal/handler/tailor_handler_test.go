package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailor/internal/domain"
	"tailor/internal/generator"
	"tailor/internal/handler"
	"tailor/internal/service"
	"tailor/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestTailorHandler_Tailor_Success(t *testing.T) {
	mockSvc := new(mocks.MockTailorService)
	h := handler.NewTailorHandler(mockSvc)

	expected := &domain.TailoredResume{
		Resume: "SKILLS\nGo",
		Report: "Strong match.",
		Sections: []domain.Section{
			{Name: domain.SectionSkills, Body: "Go"},
		},
		Model: "gemini-1.5-flash",
	}
	mockSvc.On("Tailor", mock.Anything, mock.MatchedBy(func(req service.TailorRequest) bool {
		return req.ResumeText == "my resume" && req.JobDescription == "the job"
	})).Return(expected, nil)

	body, contentType := multipartBody(t, map[string]string{
		"resume_text":     "my resume",
		"job_description": "the job",
	}, "", "", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tailor", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Tailor(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "SKILLS\nGo", data["resume"])
	assert.Equal(t, "Strong match.", data["report"])
	mockSvc.AssertExpectations(t)
}

func TestTailorHandler_Tailor_FileUpload(t *testing.T) {
	mockSvc := new(mocks.MockTailorService)
	h := handler.NewTailorHandler(mockSvc)

	mockSvc.On("Tailor", mock.Anything, mock.MatchedBy(func(req service.TailorRequest) bool {
		return req.Filename == "resume.pdf" && len(req.FileBytes) > 0
	})).Return(&domain.TailoredResume{Resume: "ok", Report: "—"}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"job_description": "the job",
	}, "resume", "resume.pdf", []byte("%PDF-1.4 content"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tailor", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Tailor(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestTailorHandler_Tailor_SectionFields(t *testing.T) {
	mockSvc := new(mocks.MockTailorService)
	h := handler.NewTailorHandler(mockSvc)

	mockSvc.On("Tailor", mock.Anything, mock.MatchedBy(func(req service.TailorRequest) bool {
		return req.SectionFields[domain.SectionSkills] == "Go, SQL" &&
			req.SectionFields[domain.SectionExperience] == "Acme Corp"
	})).Return(&domain.TailoredResume{Resume: "ok", Report: "—"}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"skills":          "Go, SQL",
		"experience":      "Acme Corp",
		"summary":         "  ",
		"job_description": "the job",
	}, "", "", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tailor", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Tailor(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestTailorHandler_Tailor_DomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing resume", domain.ErrMissingResume, http.StatusBadRequest, "MISSING_RESUME"},
		{"missing job description", domain.ErrMissingJobDescription, http.StatusBadRequest, "MISSING_JOB_DESCRIPTION"},
		{"credential missing", domain.ErrCredentialMissing, http.StatusServiceUnavailable, "CREDENTIAL_MISSING"},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"extraction failed", domain.ErrExtractionFailed, http.StatusUnprocessableEntity, "EXTRACTION_FAILED"},
		{"rate limited", generator.NewRateLimitError("gemini", errors.New("429"), 30), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"empty completion", domain.ErrEmptyCompletion, http.StatusBadGateway, "GENERATION_FAILED"},
		{"generation failed", domain.ErrGenerationFailed, http.StatusBadGateway, "GENERATION_FAILED"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := new(mocks.MockTailorService)
			h := handler.NewTailorHandler(mockSvc)
			mockSvc.On("Tailor", mock.Anything, mock.Anything).Return(nil, tc.err)

			body, contentType := multipartBody(t, map[string]string{
				"resume_text":     "my resume",
				"job_description": "the job",
			}, "", "", nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tailor", body)
			c.Request.Header.Set("Content-Type", contentType)

			h.Tailor(c)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp handler.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}
