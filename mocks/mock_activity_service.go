package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"harvester/internal/domain"
)

// MockActivityService is a mock implementation of service.ActivityService.
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Recent(ctx context.Context) ([]domain.ScrapeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScrapeRecord), args.Error(1)
}

func (m *MockActivityService) ClearRecent(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActivityService) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockActivityService) ResetStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
