package service

import (
	"context"

	"harvester/internal/domain"
	"harvester/internal/port"
)

// ActivityService exposes the recent-scrape history and lifetime counters.
type ActivityService interface {
	Recent(ctx context.Context) ([]domain.ScrapeRecord, error)
	ClearRecent(ctx context.Context) error
	Stats(ctx context.Context) (*domain.Stats, error)
	ResetStats(ctx context.Context) error
}

type activityService struct {
	scrapes     port.ScrapeRepository
	recentLimit int
}

// NewActivityService creates a new ActivityService implementation.
func NewActivityService(scrapes port.ScrapeRepository, recentLimit int) ActivityService {
	return &activityService{scrapes: scrapes, recentLimit: recentLimit}
}

func (s *activityService) Recent(ctx context.Context) ([]domain.ScrapeRecord, error) {
	return s.scrapes.ListRecent(ctx, s.recentLimit)
}

func (s *activityService) ClearRecent(ctx context.Context) error {
	return s.scrapes.ClearRecent(ctx)
}

func (s *activityService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.scrapes.GetStats(ctx)
}

func (s *activityService) ResetStats(ctx context.Context) error {
	return s.scrapes.ResetStats(ctx)
}
