package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"market-intel/internal/common/config"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

const contactPage = `<html><body>
<h1>Joe's HVAC</h1>
<p>Reach our office at <a href="mailto:info@joeshvac.com?subject=Quote">info@joeshvac.com</a>
or the owner directly at joebob@gmail.com.</p>
<footer>noreply@joeshvac.com</footer>
</body></html>`

func newTestCrawler() *Crawler {
	return NewCrawler(config.EnrichmentConfig{
		Enabled:        true,
		MaxConcurrent:  2,
		MaxBusinesses:  5,
		RequestTimeout: 2000,
	}, logger.NewNoOpLogger())
}

func TestEnrich_FillsMissingEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contactPage))
	}))
	defer server.Close()

	businesses := []models.MergedBusiness{
		{BusinessRecord: models.BusinessRecord{Name: "Joe's HVAC", Website: server.URL}},
		{BusinessRecord: models.BusinessRecord{Name: "Already Done", Website: server.URL, Email: "keep@me.com"}},
		{BusinessRecord: models.BusinessRecord{Name: "No Site"}},
	}

	newTestCrawler().Enrich(context.Background(), businesses)

	assert.Equal(t, "info@joeshvac.com", businesses[0].Email)
	assert.Equal(t, "keep@me.com", businesses[1].Email)
	assert.Empty(t, businesses[2].Email)
}

func TestEnrich_UnreachableSiteLeavesBusinessUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	businesses := []models.MergedBusiness{
		{BusinessRecord: models.BusinessRecord{Name: "Joe's HVAC", Website: server.URL}},
	}

	newTestCrawler().Enrich(context.Background(), businesses)
	assert.Empty(t, businesses[0].Email)
}

func TestEnrich_RespectsCrawlBudget(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(contactPage))
	}))
	defer server.Close()

	crawler := NewCrawler(config.EnrichmentConfig{
		MaxConcurrent:  1,
		MaxBusinesses:  2,
		RequestTimeout: 2000,
	}, logger.NewNoOpLogger())

	businesses := make([]models.MergedBusiness, 5)
	for i := range businesses {
		businesses[i] = models.MergedBusiness{BusinessRecord: models.BusinessRecord{Name: "Biz", Website: server.URL}}
	}

	crawler.Enrich(context.Background(), businesses)
	assert.Equal(t, 2, hits)
}

func TestPickBusinessEmail(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"prefers front office prefix", []string{"joe@joeshvac.com", "info@joeshvac.com"}, "info@joeshvac.com"},
		{"skips free mail hosts", []string{"owner@gmail.com", "sales@joeshvac.com"}, "sales@joeshvac.com"},
		{"skips automated senders", []string{"noreply@joeshvac.com"}, ""},
		{"falls back to first usable", []string{"jane@acmeplumbing.com", "joe@acmeplumbing.com"}, "jane@acmeplumbing.com"},
		{"nothing usable", []string{"owner@gmail.com", "not-an-email"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickBusinessEmail(tt.candidates))
		})
	}
}
