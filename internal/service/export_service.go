package service

import (
	"strings"

	"tailor/internal/docgen"
	"tailor/internal/domain"
)

// ExportService renders a tailored resume block as downloadable bytes. The
// service is stateless: nothing is persisted between invocations, so the
// caller supplies the text to export.
type ExportService interface {
	Text(resume string) ([]byte, error)
	Docx(resume string) ([]byte, error)
}

type exportService struct{}

// NewExportService creates a new ExportService implementation.
func NewExportService() ExportService {
	return &exportService{}
}

func (s *exportService) Text(resume string) ([]byte, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, domain.ErrMissingResume
	}
	return []byte(resume), nil
}

func (s *exportService) Docx(resume string) ([]byte, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, domain.ErrMissingResume
	}
	return docgen.WriteDocx(resume)
}
