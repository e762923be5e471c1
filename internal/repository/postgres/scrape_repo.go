package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"harvester/internal/domain"
	"harvester/internal/port"
)

type scrapeRepo struct {
	db *sqlx.DB
}

// NewScrapeRepo creates a new PostgreSQL-backed ScrapeRepository.
func NewScrapeRepo(db *sqlx.DB) port.ScrapeRepository {
	return &scrapeRepo{db: db}
}

func (r *scrapeRepo) RecordScrape(ctx context.Context, rec *domain.ScrapeRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("scrapeRepo.RecordScrape begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scrapes (id, url, title, row_count, scraped_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.URL, rec.Title, rec.RowCount, rec.ScrapedAt); err != nil {
		return fmt.Errorf("scrapeRepo.RecordScrape insert: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE scrape_stats SET total_scrapes = total_scrapes + 1,
		 total_rows = total_rows + $1`, rec.RowCount); err != nil {
		return fmt.Errorf("scrapeRepo.RecordScrape counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scrapeRepo.RecordScrape commit: %w", err)
	}
	return nil
}

func (r *scrapeRepo) ListRecent(ctx context.Context, limit int) ([]domain.ScrapeRecord, error) {
	records := []domain.ScrapeRecord{}
	if err := r.db.SelectContext(ctx, &records,
		`SELECT id, url, title, row_count, scraped_at FROM scrapes
		 ORDER BY scraped_at DESC LIMIT $1`, limit); err != nil {
		return nil, fmt.Errorf("scrapeRepo.ListRecent: %w", err)
	}
	return records, nil
}

func (r *scrapeRepo) ClearRecent(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM scrapes"); err != nil {
		return fmt.Errorf("scrapeRepo.ClearRecent: %w", err)
	}
	return nil
}

func (r *scrapeRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats,
		"SELECT total_scrapes, total_rows FROM scrape_stats"); err != nil {
		return nil, fmt.Errorf("scrapeRepo.GetStats: %w", err)
	}
	return &stats, nil
}

func (r *scrapeRepo) ResetStats(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE scrape_stats SET total_scrapes = 0, total_rows = 0"); err != nil {
		return fmt.Errorf("scrapeRepo.ResetStats: %w", err)
	}
	return nil
}
