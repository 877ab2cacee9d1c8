// internal/models/request.go
package models

// ScanRequest is the decoded body of a market scan call.
type ScanRequest struct {
	RequestID     string   `json:"request_id,omitempty"`
	Location      string   `json:"location"`
	Industry      string   `json:"industry"`
	RadiusMiles   int      `json:"radius_miles,omitempty"`
	MaxBusinesses int      `json:"max_businesses,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	UseCache      bool     `json:"use_cache,omitempty"`
	UseHouseholds bool     `json:"use_households,omitempty"`
	CrawlContacts bool     `json:"crawl_contacts,omitempty"`
}

// Query is one unit of work handed to a source adapter.
type Query struct {
	Location    string `json:"location"`
	Term        string `json:"term"`
	RadiusMiles int    `json:"radius_miles"`
	Limit       int    `json:"limit"`
}
