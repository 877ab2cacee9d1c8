// internal/models/business.go
package models

import "encoding/json"

// Source identifiers carried on every record through the pipeline.
const (
	SourceGooglePlaces = "google_places"
	SourceYelp         = "yelp"
	SourceSerp         = "serp"
	SourceSynthetic    = "synthetic"
)

// RawRecord is an undecoded listing as returned by a directory adapter.
// The payload schema depends on the source; the normalizer owns the
// per-source decoding.
type RawRecord struct {
	Source  string          `json:"source"`
	Payload json.RawMessage `json:"payload"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BusinessRecord is the normalized, source-tagged form of a listing.
type BusinessRecord struct {
	Name        string       `json:"name"`
	Line1       string       `json:"line1"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Zip         string       `json:"zip"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Website     string       `json:"website"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	PhotoCount  int          `json:"photo_count"`
	Categories  []string     `json:"categories,omitempty"`
	Source      string       `json:"source"`
}

// MergedBusiness is one deduplicated business with its contributing sources.
type MergedBusiness struct {
	BusinessRecord
	Sources []string `json:"sources"`
}

// SourceCount returns how many distinct sources contributed to the merge.
func (m *MergedBusiness) SourceCount() int {
	return len(m.Sources)
}
