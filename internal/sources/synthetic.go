// internal/sources/synthetic.go
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"market-intel/internal/common/config"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

const defaultSyntheticCount = 15

var syntheticNameTemplates = []string{
	"%s %s Pros",
	"%s %s Services",
	"Premier %[2]s of %[1]s",
	"%s Family %s",
	"%s %s Experts",
	"All-City %[2]s",
	"Metro %[2]s Co",
	"%s %s Solutions",
	"Reliable %[2]s",
	"First Choice %[2]s",
}

var syntheticStreets = []string{
	"Main St", "Oak Ave", "Washington Blvd", "Maple Dr", "2nd St",
	"Park Rd", "Elm St", "Lake Ave", "Mill Rd", "Broadway",
}

type syntheticBusiness struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Website     string  `json:"website"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	PhotoCount  int     `json:"photo_count"`
	Category    string  `json:"category"`
}

// SyntheticAdapter fabricates plausible listings so the pipeline works
// end to end without API keys. Output is deterministic for a given
// location and term, so repeated scans and cache entries agree.
type SyntheticAdapter struct {
	limit  int
	logger logger.Logger
}

func NewSyntheticAdapter(cfg config.SourceConfig, log logger.Logger) *SyntheticAdapter {
	return &SyntheticAdapter{limit: cfg.Limit, logger: log}
}

func (a *SyntheticAdapter) Name() string { return models.SourceSynthetic }

func (a *SyntheticAdapter) Fetch(ctx context.Context, query models.Query) ([]models.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := effectiveLimit(a.limit, query.Limit)
	if count <= 0 {
		count = defaultSyntheticCount
	}

	city := cityFromLocation(query.Location)
	category := titleCase(query.Term)
	rng := rand.New(rand.NewSource(int64(seedFor(query.Location, query.Term))))

	records := make([]models.RawRecord, 0, count)
	for i := 0; i < count; i++ {
		template := syntheticNameTemplates[i%len(syntheticNameTemplates)]
		name := fmt.Sprintf(template, city, category)
		if i >= len(syntheticNameTemplates) {
			name = fmt.Sprintf("%s #%d", name, i/len(syntheticNameTemplates)+1)
		}

		slug := slugify(name)
		business := syntheticBusiness{
			Name:        name,
			Address:     fmt.Sprintf("%d %s", 100+rng.Intn(9800), syntheticStreets[rng.Intn(len(syntheticStreets))]),
			City:        city,
			Phone:       fmt.Sprintf("(555) %03d-%04d", rng.Intn(1000), rng.Intn(10000)),
			Rating:      3.0 + float64(rng.Intn(21))/10.0,
			ReviewCount: 5 + rng.Intn(300),
			PhotoCount:  rng.Intn(40),
			Category:    category,
		}
		// Roughly a third of small businesses have no web presence.
		if rng.Intn(3) != 0 {
			business.Website = "https://" + slug + ".com"
			business.Email = "info@" + slug + ".com"
		}

		payload, err := json.Marshal(business)
		if err != nil {
			return nil, err
		}
		records = append(records, models.RawRecord{Source: a.Name(), Payload: payload})
	}

	a.logger.Debug("Synthetic fetch complete", map[string]interface{}{
		"term":    query.Term,
		"records": len(records),
	})
	return records, nil
}

func seedFor(location, term string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(location)))
	h.Write([]byte("|"))
	h.Write([]byte(strings.ToLower(term)))
	return h.Sum32()
}

func cityFromLocation(location string) string {
	city := location
	if idx := strings.Index(location, ","); idx >= 0 {
		city = location[:idx]
	}
	return titleCase(strings.TrimSpace(city))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
