// internal/models/response.go
package models

// ScanResponse is the full response contract for a market scan.
type ScanResponse struct {
	RequestID      string         `json:"request_id"`
	Location       string         `json:"location"`
	Industry       string         `json:"industry"`
	Businesses     []BusinessView `json:"businesses"`
	MarketOverview MarketOverview `json:"market_overview"`
	TotalFound     int            `json:"total_found"`
	PartialResults bool           `json:"partial_results,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
}

type BusinessView struct {
	Name            string              `json:"name"`
	Address         AddressView         `json:"address"`
	Contact         ContactView         `json:"contact"`
	Metrics         MetricsView         `json:"metrics"`
	MarketAnalytics MarketAnalyticsView `json:"market_analytics"`
	DataSources     []string            `json:"data_sources"`
	SourceCount     int                 `json:"source_count"`
}

type AddressView struct {
	Line1       string       `json:"line1"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Zip         string       `json:"zip"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type ContactView struct {
	Phone        string `json:"phone"`
	PhoneValid   bool   `json:"phone_valid"`
	Email        string `json:"email"`
	EmailValid   bool   `json:"email_valid"`
	Website      string `json:"website"`
	WebsiteValid bool   `json:"website_valid"`
}

type MetricsView struct {
	Rating             float64 `json:"rating"`
	ReviewCount        int     `json:"review_count"`
	EstimatedRevenue   float64 `json:"estimated_revenue"`
	MinRevenue         float64 `json:"min_revenue"`
	MaxRevenue         float64 `json:"max_revenue"`
	LeadScore          float64 `json:"lead_score"`
	OwnerAgeEst        int     `json:"owner_age_est"`
	YearsInBusinessEst int     `json:"years_in_business_est"`
}

type MarketAnalyticsView struct {
	SuccessionRisk     SuccessionRisk     `json:"succession_risk"`
	DigitalOpportunity DigitalOpportunity `json:"digital_opportunity"`
}

type MarketOverview struct {
	HHIScore           float64      `json:"hhi_score"`
	FragmentationLevel string       `json:"fragmentation_level"`
	BusinessDensity    float64      `json:"business_density"`
	DensityLevel       string       `json:"density_level"`
	MarketOpportunity  string       `json:"market_opportunity"`
	TotalMarketValue   float64      `json:"total_market_value"`
	Sizing             MarketSizing `json:"sizing"`
}
