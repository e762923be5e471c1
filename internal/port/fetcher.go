package port

import "context"

// PageFetcher retrieves the raw HTML of a page. On success the content is a
// non-empty string; any transport or status failure is an error.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
