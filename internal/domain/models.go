package domain

import (
	"time"

	"github.com/google/uuid"
)

// DataPoint is one verified extractable field inside a repeating element.
// Selector is interpreted relative to the repeating element; when Attribute
// is empty, extraction reads trimmed text content instead.
type DataPoint struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Selector  string `json:"selector"`
	Attribute string `json:"attribute,omitempty"`
}

// DataCollection is one verified repeating-item group. DataPoints keep their
// proposed order, which is also display and column order.
type DataCollection struct {
	ID                       string      `json:"id"`
	Name                     string      `json:"name"`
	RepeatingElementSelector string      `json:"repeating_element_selector"`
	DataPoints               []DataPoint `json:"data_points"`
}

// CollectionSet is an ordered set of verified collections. Order is the
// oracle's proposal order and is treated as a relevance ranking.
type CollectionSet []DataCollection

// PointByID returns the collection and data point owning the given id.
func (s CollectionSet) PointByID(id string) (*DataCollection, *DataPoint, bool) {
	for i := range s {
		for j := range s[i].DataPoints {
			if s[i].DataPoints[j].ID == id {
				return &s[i], &s[i].DataPoints[j], true
			}
		}
	}
	return nil, nil, false
}

// Row maps a data point label to its extracted value. A nil value is an
// explicit null: the field did not resolve inside that repeating element.
// Column order is carried separately because map keys are unordered.
type Row map[string]*string

// ScrapeRecord is one entry in the recent-activity history.
type ScrapeRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	URL       string    `db:"url" json:"url"`
	Title     string    `db:"title" json:"title"`
	RowCount  int       `db:"row_count" json:"row_count"`
	ScrapedAt time.Time `db:"scraped_at" json:"scraped_at"`
}

// Stats holds the lifetime extraction counters. They are independent of the
// recent-activity list: clearing one does not touch the other.
type Stats struct {
	TotalScrapes int `db:"total_scrapes" json:"total_scrapes"`
	TotalRows    int `db:"total_rows" json:"total_rows"`
}
