package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tailor/internal/domain"
	"tailor/internal/service"
)

// MockTailorService is a mock implementation of service.TailorService.
type MockTailorService struct {
	mock.Mock
}

func (m *MockTailorService) Tailor(ctx context.Context, req service.TailorRequest) (*domain.TailoredResume, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TailoredResume), args.Error(1)
}
