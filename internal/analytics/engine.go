// internal/analytics/engine.go
package analytics

import (
	"strings"

	"market-intel/internal/common/errors"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

// BusinessAnalytics bundles every per-business calculation.
type BusinessAnalytics struct {
	Revenue         models.RevenueEstimate
	Succession      models.SuccessionRisk
	Digital         models.DigitalOpportunity
	LeadScore       float64
	YearsInBusiness int
}

// MarketReport is the full analytics output for one scan.
type MarketReport struct {
	PerBusiness      []BusinessAnalytics
	Concentration    models.ConcentrationReport
	Density          models.DensityReport
	Sizing           models.MarketSizing
	Opportunity      string
	TotalMarketValue float64
}

// Engine runs every calculator over a merged business set. Calculators
// degrade individually; a missing input never fails the scan.
type Engine struct {
	logger logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{logger: log}
}

func (e *Engine) Analyze(req models.ScanRequest, businesses []models.MergedBusiness, collector *errors.Collector) MarketReport {
	perBusiness := make([]BusinessAnalytics, len(businesses))
	revenues := make([]models.RevenueEstimate, len(businesses))

	var totalRevenue float64
	for i, b := range businesses {
		years := EstimateYearsInBusiness(b.ReviewCount, b.Rating)
		revenue := EstimateRevenue(req.Industry, b.ReviewCount, b.PhotoCount, b.Rating, years)
		revenues[i] = revenue
		totalRevenue += revenue.Estimate

		perBusiness[i] = BusinessAnalytics{
			Revenue:         revenue,
			YearsInBusiness: years,
		}
	}

	concentration := MarketConcentration(businesses, revenues)

	for i, b := range businesses {
		succession := AssessSuccessionRisk(SuccessionInputs{
			Name:            b.Name,
			Website:         b.Website,
			Rating:          b.Rating,
			Revenue:         revenues[i].Estimate,
			YearsInBusiness: perBusiness[i].YearsInBusiness,
			EmployeeCount:   EstimateEmployees(b.ReviewCount),
		})
		digital := AssessDigitalOpportunity(req.Industry, b.Website, b.Name, revenues[i].Estimate)

		var share float64
		if totalRevenue > 0 {
			share = revenues[i].Estimate / totalRevenue
		}

		perBusiness[i].Succession = succession
		perBusiness[i].Digital = digital
		perBusiness[i].LeadScore = LeadScore(LeadScoreInputs{
			Revenue:         revenues[i].Estimate,
			SuccessionScore: succession.Score,
			MarketShare:     share,
			DigitalScore:    digital.Score,
			HHI:             concentration.HHI,
		})
	}

	density := BusinessDensity(req.Location, len(businesses), req.UseHouseholds)
	if density.Degraded && collector != nil {
		collector.Collect(errors.NewAnalyticsDegradedError("density",
			"location not in census table, default population base used"))
	}

	sizing := EstimateMarketSizing(req.Industry, dominantState(businesses, req.Location), len(businesses))

	e.logger.Debug("analytics complete", map[string]interface{}{
		"businesses": len(businesses),
		"hhi":        concentration.HHI,
		"density":    density.PerThousand,
	})

	return MarketReport{
		PerBusiness:      perBusiness,
		Concentration:    concentration,
		Density:          density,
		Sizing:           sizing,
		Opportunity:      MarketOpportunity(density.Level, concentration.RollupOpportunity),
		TotalMarketValue: totalRevenue,
	}
}

// dominantState picks the most frequent record state, falling back to a
// trailing two-letter token in the location string.
func dominantState(businesses []models.MergedBusiness, location string) string {
	counts := make(map[string]int)
	for _, b := range businesses {
		if b.State != "" {
			counts[strings.ToUpper(b.State)]++
		}
	}

	best := ""
	bestCount := 0
	for state, count := range counts {
		if count > bestCount {
			best, bestCount = state, count
		}
	}
	if best != "" {
		return best
	}

	parts := strings.Split(location, ",")
	last := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))
	if len(last) == 2 {
		return last
	}
	return ""
}
