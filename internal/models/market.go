// internal/models/market.go
package models

// RevenueEstimate is the modeled annual revenue for one business.
type RevenueEstimate struct {
	Estimate   float64 `json:"estimate"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Confidence float64 `json:"confidence"`
}

// ConcentrationReport summarizes market concentration for the scan.
type ConcentrationReport struct {
	HHI                float64 `json:"hhi"`
	FragmentationLevel string  `json:"fragmentation_level"`
	RollupOpportunity  string  `json:"rollup_opportunity"`
	TopShare           float64 `json:"top_share"`
	Top3Share          float64 `json:"top3_share"`
	Proxy              string  `json:"proxy"`
}

// DensityReport captures businesses per capita for the location.
type DensityReport struct {
	PerThousand    float64 `json:"per_thousand"`
	Level          string  `json:"level"`
	Interpretation string  `json:"interpretation"`
	PopulationBase int64   `json:"population_base"`
	Degraded       bool    `json:"degraded"`
}

// SuccessionRisk is the ownership transition assessment for one business.
type SuccessionRisk struct {
	Score            float64  `json:"score"`
	Level            string   `json:"level"`
	Timeline         string   `json:"timeline"`
	AgeRisk          float64  `json:"age_risk"`
	ScaleRisk        float64  `json:"scale_risk"`
	LeadershipRisk   float64  `json:"leadership_risk"`
	DigitalRisk      float64  `json:"digital_risk"`
	PerformanceRisk  float64  `json:"performance_risk"`
	Factors          []string `json:"factors,omitempty"`
	OwnerAgeEstimate int      `json:"owner_age_estimate"`
}

// DigitalOpportunity is the digital-presence gap assessment for one business.
type DigitalOpportunity struct {
	Score         float64 `json:"score"`
	Percentile    float64 `json:"percentile"`
	Urgency       string  `json:"urgency"`
	UrgencyScore  float64 `json:"urgency_score"`
	RevenueLift   float64 `json:"revenue_lift"`
	WebsiteScore  float64 `json:"website_score"`
	SEOScore      float64 `json:"seo_score"`
	MobileScore   float64 `json:"mobile_score"`
	SecurityScore float64 `json:"security_score"`
	SpeedScore    float64 `json:"speed_score"`
}

// MarketSizing carries the top-down opportunity estimates.
type MarketSizing struct {
	TAM                  float64 `json:"tam"`
	SAM                  float64 `json:"sam"`
	SOM                  float64 `json:"som"`
	GeographicMultiplier float64 `json:"geographic_multiplier"`
}
