// Package selection tracks which verified data points are chosen for the
// next extraction. It is a plain set of ids: whether "all visible are
// selected" is always derived from current membership, never stored.
package selection

import (
	"sort"
	"strings"

	"harvester/internal/domain"
)

// State is the set of selected data point ids. Membership tests and
// mutations are O(1). The zero value is not usable; construct with New or
// NewFromIDs.
type State struct {
	ids map[string]struct{}
}

// New returns an empty selection.
func New() *State {
	return &State{ids: make(map[string]struct{})}
}

// NewFromIDs returns a selection containing exactly the given ids.
func NewFromIDs(ids []string) *State {
	s := New()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle flips membership of id.
func (s *State) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Has reports whether id is selected.
func (s *State) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected ids.
func (s *State) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *State) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SelectAll adds every visible id to the selection.
func (s *State) SelectAll(visible []string) {
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

// DeselectAll removes every visible id from the selection.
func (s *State) DeselectAll(visible []string) {
	for _, id := range visible {
		delete(s.ids, id)
	}
}

// AllSelected reports whether every visible id is currently selected.
// False for an empty visible set. The caller uses this to decide whether
// the next bulk action is SelectAll or DeselectAll (single toggle button);
// the state itself only ever executes the requested union or difference.
func (s *State) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// VisibleIDs returns the ids of data points passing the text filter, in
// collection and field order. A point is visible when query is a
// case-insensitive substring of its label or of its collection's name; an
// empty query keeps everything visible.
func VisibleIDs(set domain.CollectionSet, query string) []string {
	query = strings.ToLower(query)
	var out []string
	for _, coll := range set {
		collMatch := strings.Contains(strings.ToLower(coll.Name), query)
		for _, dp := range coll.DataPoints {
			if collMatch || strings.Contains(strings.ToLower(dp.Label), query) {
				out = append(out, dp.ID)
			}
		}
	}
	return out
}
