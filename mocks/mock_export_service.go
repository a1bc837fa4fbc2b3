package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Text(resume string) ([]byte, error) {
	args := m.Called(resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) Docx(resume string) ([]byte, error) {
	args := m.Called(resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
