package port

import (
	"context"

	"harvester/internal/domain"
)

// ScrapeRepository persists the recent-activity history and the lifetime
// counters. The two live separately so clearing one leaves the other intact.
type ScrapeRepository interface {
	// RecordScrape appends a history entry and bumps the counters atomically.
	RecordScrape(ctx context.Context, rec *domain.ScrapeRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ScrapeRecord, error)
	ClearRecent(ctx context.Context) error
	GetStats(ctx context.Context) (*domain.Stats, error)
	ResetStats(ctx context.Context) error
}
