package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"market-intel/internal/models"
)

func business(name string, reviews int, rating float64) models.MergedBusiness {
	return models.MergedBusiness{
		BusinessRecord: models.BusinessRecord{
			Name:        name,
			ReviewCount: reviews,
			Rating:      rating,
		},
		Sources: []string{models.SourceGooglePlaces},
	}
}

func TestMarketConcentration_EmptyMarket(t *testing.T) {
	report := MarketConcentration(nil, nil)

	assert.Equal(t, 0.0, report.HHI)
	assert.Equal(t, "Highly Fragmented", report.FragmentationLevel)
}

func TestMarketConcentration_EqualSharesBound(t *testing.T) {
	// N identical businesses must land exactly on 10000/N.
	for _, n := range []int{1, 4, 10, 25} {
		businesses := make([]models.MergedBusiness, n)
		revenues := make([]models.RevenueEstimate, n)
		for i := range businesses {
			businesses[i] = business("Biz", 100, 4.0)
			revenues[i] = models.RevenueEstimate{Estimate: 500000}
		}

		report := MarketConcentration(businesses, revenues)
		assert.InDelta(t, 10000.0/float64(n), report.HHI, 0.01, "n=%d", n)
	}
}

func TestMarketConcentration_DominantPlayer(t *testing.T) {
	businesses := []models.MergedBusiness{
		business("Giant Corp", 900, 4.5),
		business("Tiny One", 50, 4.0),
		business("Tiny Two", 50, 4.0),
	}
	revenues := []models.RevenueEstimate{
		{Estimate: 9000000},
		{Estimate: 500000},
		{Estimate: 500000},
	}

	report := MarketConcentration(businesses, revenues)

	// 90% share alone contributes 8100 points.
	assert.Greater(t, report.HHI, 8100.0)
	assert.Equal(t, "Highly Concentrated", report.FragmentationLevel)
	assert.Equal(t, "Limited", report.RollupOpportunity)
	assert.InDelta(t, 0.9, report.TopShare, 0.001)
}

func TestMarketConcentration_FragmentedMarket(t *testing.T) {
	businesses := make([]models.MergedBusiness, 20)
	revenues := make([]models.RevenueEstimate, 20)
	for i := range businesses {
		businesses[i] = business("Shop", 40, 4.0)
		revenues[i] = models.RevenueEstimate{Estimate: 400000}
	}

	report := MarketConcentration(businesses, revenues)

	assert.Less(t, report.HHI, 1500.0)
	assert.Equal(t, "Highly Fragmented", report.FragmentationLevel)
	assert.Equal(t, "Excellent", report.RollupOpportunity)
	assert.Equal(t, ProxyRevenue, report.Proxy)
}

func TestMarketConcentration_ReviewsProxyFallback(t *testing.T) {
	businesses := []models.MergedBusiness{
		business("A", 100, 5.0),
		business("B", 100, 2.5),
	}

	report := MarketConcentration(businesses, nil)

	assert.Equal(t, ProxyReviewsWeighted, report.Proxy)
	// A carries 100, B carries 50 of 150 total
	expected := (100.0/150)*(100.0/150)*10000 + (50.0/150)*(50.0/150)*10000
	assert.InDelta(t, expected, report.HHI, 0.01)
}

func TestMarketConcentration_EqualProxyWhenNoSignal(t *testing.T) {
	businesses := []models.MergedBusiness{
		business("A", 0, 0),
		business("B", 0, 0),
	}

	report := MarketConcentration(businesses, nil)

	assert.Equal(t, ProxyEqual, report.Proxy)
	assert.InDelta(t, 5000.0, report.HHI, 0.01)
}
