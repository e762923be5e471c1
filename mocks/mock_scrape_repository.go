package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"harvester/internal/domain"
)

// MockScrapeRepository is a mock implementation of port.ScrapeRepository.
type MockScrapeRepository struct {
	mock.Mock
}

func (m *MockScrapeRepository) RecordScrape(ctx context.Context, rec *domain.ScrapeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockScrapeRepository) ListRecent(ctx context.Context, limit int) ([]domain.ScrapeRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScrapeRecord), args.Error(1)
}

func (m *MockScrapeRepository) ClearRecent(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScrapeRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockScrapeRepository) ResetStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
