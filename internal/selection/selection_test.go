package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester/internal/domain"
	"harvester/internal/selection"
)

func testSet() domain.CollectionSet {
	return domain.CollectionSet{
		{
			ID:   "coll-0",
			Name: "Products",
			DataPoints: []domain.DataPoint{
				{ID: "dp-0-0", Label: "Product Name"},
				{ID: "dp-0-1", Label: "Price"},
			},
		},
		{
			ID:   "coll-1",
			Name: "Reviews",
			DataPoints: []domain.DataPoint{
				{ID: "dp-1-0", Label: "Author Name"},
			},
		},
	}
}

func TestToggle_Idempotence(t *testing.T) {
	s := selection.NewFromIDs([]string{"dp-0-0"})

	s.Toggle("dp-0-1")
	assert.True(t, s.Has("dp-0-1"))
	s.Toggle("dp-0-1")
	assert.False(t, s.Has("dp-0-1"))
	assert.Equal(t, []string{"dp-0-0"}, s.IDs())

	// Toggling an unknown id is tracked but harmless downstream.
	s.Toggle("dp-9-9")
	s.Toggle("dp-9-9")
	assert.Equal(t, []string{"dp-0-0"}, s.IDs())
}

func TestSelectDeselectAll_Symmetry(t *testing.T) {
	visible := []string{"dp-0-0", "dp-0-1", "dp-1-0"}
	s := selection.NewFromIDs([]string{"dp-0-1"})

	require.False(t, s.AllSelected(visible))
	s.SelectAll(visible)
	assert.True(t, s.AllSelected(visible))
	assert.Equal(t, 3, s.Count())

	// All visible selected, so the bulk toggle now deselects them.
	s.DeselectAll(visible)
	assert.Equal(t, 0, s.Count())
	for _, id := range visible {
		assert.False(t, s.Has(id))
	}
}

func TestSelectAll_KeepsSelectionOutsideVisibleSet(t *testing.T) {
	s := selection.NewFromIDs([]string{"dp-1-0"})

	s.SelectAll([]string{"dp-0-0"})
	s.DeselectAll([]string{"dp-0-0"})

	assert.True(t, s.Has("dp-1-0"))
}

func TestAllSelected_EmptyVisibleSet(t *testing.T) {
	s := selection.NewFromIDs([]string{"dp-0-0"})
	assert.False(t, s.AllSelected(nil))
}

func TestVisibleIDs(t *testing.T) {
	set := testSet()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"dp-0-0", "dp-0-1", "dp-1-0"}},
		{"label match", "price", []string{"dp-0-1"}},
		{"label match is case-insensitive", "NAME", []string{"dp-0-0", "dp-1-0"}},
		{"collection name keeps all of its points", "products", []string{"dp-0-0", "dp-0-1"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selection.VisibleIDs(set, tt.query))
		})
	}
}

func TestVisibleIDs_DriveBulkToggle(t *testing.T) {
	set := testSet()
	s := selection.New()

	visible := selection.VisibleIDs(set, "products")
	s.SelectAll(visible)
	assert.True(t, s.AllSelected(visible))

	// Widening the filter exposes unselected points, flipping the predicate.
	wider := selection.VisibleIDs(set, "")
	assert.False(t, s.AllSelected(wider))
}
