package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrNoSelection   = errors.New("no data points selected")
	ErrDocumentParse = errors.New("document could not be parsed")
	ErrFetchFailed   = errors.New("failed to fetch page content")
)

// NoElementsMatchedError reports that a previously validated repeating
// selector no longer matches anything in the document. Recoverable: the
// caller can adjust selection and retry without re-fetching.
type NoElementsMatchedError struct {
	Selector string
}

func (e *NoElementsMatchedError) Error() string {
	return fmt.Sprintf("selector %q did not match any elements", e.Selector)
}
