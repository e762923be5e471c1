// Package extract turns a verified collection and the current selection
// into an ordered, rectangular row sequence. Extraction is atomic: it
// either returns the full result or fails without touching selection or
// collection state, so the caller can adjust and retry.
package extract

import (
	"fmt"

	"harvester/internal/domain"
	"harvester/internal/htmldoc"
	"harvester/internal/selection"
)

// Result is a successful extraction. Columns carries label order because
// Row keys are unordered; every row has exactly the Columns key set.
// Note is non-empty when fields outside the extracted collection were
// selected and silently ignored.
type Result struct {
	Columns []string     `json:"columns"`
	Rows    []domain.Row `json:"rows"`
	Note    string       `json:"note,omitempty"`
}

// Run extracts one row per repeating element of the first collection that
// has any selected data point.
//
// Returns domain.ErrNoSelection when no collection has a selected point,
// and domain.NoElementsMatchedError when the chosen collection's repeating
// selector no longer matches the document. When points are selected in more
// than one collection, only the first such collection (in set order) is
// extracted and Result.Note says so; the repeat cardinalities of two
// collections are unrelated, so one rectangular table cannot hold both.
func Run(doc *htmldoc.Document, set domain.CollectionSet, sel *selection.State) (*Result, error) {
	var chosen []domain.DataCollection
	for _, coll := range set {
		if hasSelectedPoint(coll, sel) {
			chosen = append(chosen, coll)
		}
	}
	if len(chosen) == 0 {
		return nil, domain.ErrNoSelection
	}

	coll := chosen[0]
	note := ""
	if len(chosen) > 1 {
		note = fmt.Sprintf("extracting the first collection %q only; multi-collection extraction is not supported", coll.Name)
	}

	var points []domain.DataPoint
	for _, dp := range coll.DataPoints {
		if sel.Has(dp.ID) {
			points = append(points, dp)
		}
	}

	elements := doc.MatchAll(coll.RepeatingElementSelector)
	if len(elements) == 0 {
		return nil, &domain.NoElementsMatchedError{Selector: coll.RepeatingElementSelector}
	}

	columns := make([]string, 0, len(points))
	for _, dp := range points {
		columns = append(columns, dp.Label)
	}

	rows := make([]domain.Row, 0, len(elements))
	for _, el := range elements {
		row := make(domain.Row, len(points))
		for _, dp := range points {
			row[dp.Label] = htmldoc.ReadField(el, dp.Selector, dp.Attribute)
		}
		rows = append(rows, row)
	}

	return &Result{Columns: columns, Rows: rows, Note: note}, nil
}

func hasSelectedPoint(coll domain.DataCollection, sel *selection.State) bool {
	for _, dp := range coll.DataPoints {
		if sel.Has(dp.ID) {
			return true
		}
	}
	return false
}
