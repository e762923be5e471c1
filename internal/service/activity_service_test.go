package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harvester/internal/domain"
	"harvester/internal/service"
	"harvester/mocks"
)

func TestRecentPassesConfiguredLimit(t *testing.T) {
	repo := new(mocks.MockScrapeRepository)
	records := []domain.ScrapeRecord{
		{ID: uuid.New(), URL: "https://example.com", Title: "Example", RowCount: 3, ScrapedAt: time.Now()},
	}
	repo.On("ListRecent", mock.Anything, 5).Return(records, nil)

	svc := service.NewActivityService(repo, 5)
	got, err := svc.Recent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, got)
	repo.AssertExpectations(t)
}

func TestClearRecentLeavesStats(t *testing.T) {
	repo := new(mocks.MockScrapeRepository)
	repo.On("ClearRecent", mock.Anything).Return(nil)

	svc := service.NewActivityService(repo, 5)
	require.NoError(t, svc.ClearRecent(context.Background()))

	repo.AssertNotCalled(t, "ResetStats", mock.Anything)
}

func TestStats(t *testing.T) {
	repo := new(mocks.MockScrapeRepository)
	repo.On("GetStats", mock.Anything).Return(&domain.Stats{TotalScrapes: 12, TotalRows: 340}, nil)

	svc := service.NewActivityService(repo, 5)
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalScrapes)
	assert.Equal(t, 340, stats.TotalRows)
}

func TestResetStatsLeavesHistory(t *testing.T) {
	repo := new(mocks.MockScrapeRepository)
	repo.On("ResetStats", mock.Anything).Return(nil)

	svc := service.NewActivityService(repo, 5)
	require.NoError(t, svc.ResetStats(context.Background()))

	repo.AssertNotCalled(t, "ClearRecent", mock.Anything)
}
