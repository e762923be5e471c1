package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"harvester/internal/csvexport"
	"harvester/internal/domain"
	"harvester/internal/extract"
	"harvester/internal/htmldoc"
	"harvester/internal/port"
	"harvester/internal/selection"
	"harvester/internal/validate"
)

// WorkspaceView is a prepared workspace: the fetched page plus the verified
// collections with every visible data point pre-selected. Content carries
// the raw HTML so a later extract call re-parses the exact bytes the
// suggestions were verified against.
type WorkspaceView struct {
	URL         string               `json:"url"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Collections domain.CollectionSet `json:"collections"`
	SelectedIDs []string             `json:"selected_ids"`
	ModelUsed   string               `json:"model_used,omitempty"`
}

// ExtractInput is a workspace state submitted for extraction. SelectedIDs
// may differ from the prepared default; unknown ids are ignored.
type ExtractInput struct {
	URL         string               `json:"url"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Collections domain.CollectionSet `json:"collections"`
	SelectedIDs []string             `json:"selected_ids"`
}

// ExtractResult pairs the extracted table with the filename base used for
// downloads.
type ExtractResult struct {
	Columns  []string     `json:"columns"`
	Rows     []domain.Row `json:"rows"`
	Note     string       `json:"note,omitempty"`
	Filename string       `json:"filename"`
}

// WorkspaceService drives the fetch, suggest, verify and extract pipeline.
type WorkspaceService interface {
	Prepare(ctx context.Context, url, apiKey string) (*WorkspaceView, error)
	Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error)
}

type workspaceService struct {
	fetcher port.PageFetcher
	oracle  port.SuggestionOracle
	scrapes port.ScrapeRepository
}

// NewWorkspaceService creates a new WorkspaceService implementation.
func NewWorkspaceService(fetcher port.PageFetcher, oracle port.SuggestionOracle, scrapes port.ScrapeRepository) WorkspaceService {
	return &workspaceService{fetcher: fetcher, oracle: oracle, scrapes: scrapes}
}

func (s *workspaceService) Prepare(ctx context.Context, url, apiKey string) (*WorkspaceView, error) {
	content, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := htmldoc.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentParse, err)
	}

	out, err := s.oracle.Suggest(ctx, port.SuggestInput{DOMContent: content, APIKey: apiKey})
	if err != nil {
		return nil, err
	}

	verified := validate.Validate(doc, out.Collections)

	return &WorkspaceView{
		URL:         url,
		Title:       doc.Title(),
		Content:     content,
		Collections: verified,
		SelectedIDs: validate.DefaultSelection(verified),
		ModelUsed:   out.ModelUsed,
	}, nil
}

func (s *workspaceService) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	doc, err := htmldoc.Parse(input.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentParse, err)
	}

	result, err := extract.Run(doc, input.Collections, selection.NewFromIDs(input.SelectedIDs))
	if err != nil {
		return nil, err
	}

	rec := &domain.ScrapeRecord{
		URL:       input.URL,
		Title:     input.Title,
		RowCount:  len(result.Rows),
		ScrapedAt: time.Now().UTC(),
	}
	// History is best effort. A recording failure must not lose the
	// extracted rows the user is waiting on.
	if err := s.scrapes.RecordScrape(ctx, rec); err != nil {
		log.Printf("WARN: failed to record scrape for %s: %v", input.URL, err)
	}

	return &ExtractResult{
		Columns:  result.Columns,
		Rows:     result.Rows,
		Note:     result.Note,
		Filename: csvexport.SanitizeFilename(input.Title),
	}, nil
}
