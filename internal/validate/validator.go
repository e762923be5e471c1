// Package validate reconciles untrusted oracle suggestions against the live
// document. Nothing downstream ever sees raw oracle output: everything flows
// through Validate first, which only lets through collections and data
// points that actually resolve.
package validate

import (
	"fmt"
	"log"

	"harvester/internal/domain"
	"harvester/internal/htmldoc"
	"harvester/internal/port"
)

// Validate narrows suggested collections to those that resolve against doc,
// assigning fresh stable ids. Per collection, the repeating selector must
// match at least one element; each data point is then sampled against the
// first match only, so a point can still miss in other repeating elements at
// extraction time (that yields a null, not an error). Collections with no
// surviving points are dropped. Proposal order is preserved for survivors;
// it is the relevance ranking later stages rely on.
func Validate(doc *htmldoc.Document, suggested []port.SuggestedCollection) domain.CollectionSet {
	var out domain.CollectionSet

	for collIndex, sc := range suggested {
		elements := doc.MatchAll(sc.RepeatingElementSelector)
		if len(elements) == 0 {
			log.Printf("validate: skipping collection %q: repeating selector %q matched nothing", sc.CollectionName, sc.RepeatingElementSelector)
			continue
		}
		anchor := elements[0]

		var points []domain.DataPoint
		for _, dp := range sc.DataPoints {
			if _, ok := htmldoc.MatchFirst(anchor, dp.Selector); !ok {
				log.Printf("validate: skipping data point %q: selector %q not found within %q", dp.Label, dp.Selector, sc.RepeatingElementSelector)
				continue
			}
			points = append(points, domain.DataPoint{
				ID:        fmt.Sprintf("dp-%d-%d", collIndex, len(points)),
				Label:     dp.Label,
				Selector:  dp.Selector,
				Attribute: dp.Attribute,
			})
		}

		if len(points) == 0 {
			log.Printf("validate: skipping collection %q: no data points survived", sc.CollectionName)
			continue
		}

		out = append(out, domain.DataCollection{
			ID:                       fmt.Sprintf("coll-%d", collIndex),
			Name:                     sc.CollectionName,
			RepeatingElementSelector: sc.RepeatingElementSelector,
			DataPoints:               points,
		})
	}

	return out
}

// DefaultSelection returns the data point ids of the first collection.
// A fresh CollectionSet always starts with exactly these selected.
func DefaultSelection(set domain.CollectionSet) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set[0].DataPoints))
	for _, dp := range set[0].DataPoints {
		ids = append(ids, dp.ID)
	}
	return ids
}
