// internal/server/assemble.go
package server

import (
	"regexp"
	"strings"

	"market-intel/internal/analytics"
	"market-intel/internal/models"
	"market-intel/internal/pipeline"
)

var (
	phoneDigits = regexp.MustCompile(`\d`)
	emailShape  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func assembleResponse(req models.ScanRequest, result *pipeline.Result, report analytics.MarketReport, warnings []string) *models.ScanResponse {
	views := make([]models.BusinessView, len(result.Businesses))
	for i, b := range result.Businesses {
		views[i] = assembleBusiness(b, report.PerBusiness[i])
	}

	return &models.ScanResponse{
		RequestID:  req.RequestID,
		Location:   req.Location,
		Industry:   req.Industry,
		Businesses: views,
		MarketOverview: models.MarketOverview{
			HHIScore:           report.Concentration.HHI,
			FragmentationLevel: report.Concentration.FragmentationLevel,
			BusinessDensity:    report.Density.PerThousand,
			DensityLevel:       report.Density.Level,
			MarketOpportunity:  report.Opportunity,
			TotalMarketValue:   report.TotalMarketValue,
			Sizing:             report.Sizing,
		},
		TotalFound:     len(views),
		PartialResults: result.Partial,
		Warnings:       warnings,
	}
}

func assembleBusiness(b models.MergedBusiness, a analytics.BusinessAnalytics) models.BusinessView {
	return models.BusinessView{
		Name: b.Name,
		Address: models.AddressView{
			Line1:       b.Line1,
			City:        b.City,
			State:       b.State,
			Zip:         b.Zip,
			Coordinates: b.Coordinates,
		},
		Contact: models.ContactView{
			Phone:        b.Phone,
			PhoneValid:   validPhone(b.Phone),
			Email:        b.Email,
			EmailValid:   emailShape.MatchString(b.Email),
			Website:      b.Website,
			WebsiteValid: validWebsite(b.Website),
		},
		Metrics: models.MetricsView{
			Rating:             b.Rating,
			ReviewCount:        b.ReviewCount,
			EstimatedRevenue:   a.Revenue.Estimate,
			MinRevenue:         a.Revenue.Min,
			MaxRevenue:         a.Revenue.Max,
			LeadScore:          a.LeadScore,
			OwnerAgeEst:        a.Succession.OwnerAgeEstimate,
			YearsInBusinessEst: a.YearsInBusiness,
		},
		MarketAnalytics: models.MarketAnalyticsView{
			SuccessionRisk:     a.Succession,
			DigitalOpportunity: a.Digital,
		},
		DataSources: b.Sources,
		SourceCount: b.SourceCount(),
	}
}

// validPhone accepts anything with a plausible number of digits; formats
// vary too much across sources for anything stricter.
func validPhone(phone string) bool {
	digits := phoneDigits.FindAllString(phone, -1)
	return len(digits) >= 7 && len(digits) <= 15
}

func validWebsite(website string) bool {
	return strings.HasPrefix(website, "http://") || strings.HasPrefix(website, "https://")
}
