// internal/enrich/crawler.go
package enrich

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"market-intel/internal/common/config"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

var emailExpr = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Addresses at these hosts are personal inboxes, not business contacts.
var freeMailHosts = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

var skipPrefixes = []string{"noreply", "no-reply", "donotreply", "postmaster", "mailer-daemon"}

// preferredPrefixes order the pick when a page exposes several addresses.
var preferredPrefixes = []string{"info", "contact", "hello", "office", "support", "sales"}

// Crawler fills in missing email addresses by fetching each business
// website and scraping mailto links and page text. Failures are silent
// per business; enrichment never degrades a scan.
type Crawler struct {
	client        *http.Client
	maxConcurrent int
	maxBusinesses int
	logger        logger.Logger
}

func NewCrawler(cfg config.EnrichmentConfig, log logger.Logger) *Crawler {
	timeout := config.GetDuration(cfg.RequestTimeout)
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	maxBusinesses := cfg.MaxBusinesses
	if maxBusinesses <= 0 {
		maxBusinesses = 10
	}
	return &Crawler{
		client:        &http.Client{Timeout: timeout},
		maxConcurrent: maxConcurrent,
		maxBusinesses: maxBusinesses,
		logger:        log,
	}
}

// Enrich crawls websites for businesses that have one but lack an email.
// It mutates the slice in place and respects the per-scan crawl budget.
func (c *Crawler) Enrich(ctx context.Context, businesses []models.MergedBusiness) {
	var (
		wg      sync.WaitGroup
		crawled int
	)
	sem := make(chan struct{}, c.maxConcurrent)

	for i := range businesses {
		if crawled >= c.maxBusinesses {
			break
		}
		if businesses[i].Email != "" || businesses[i].Website == "" {
			continue
		}
		crawled++

		wg.Add(1)
		sem <- struct{}{}
		go func(b *models.MergedBusiness) {
			defer wg.Done()
			defer func() { <-sem }()

			email, err := c.extractEmail(ctx, b.Website)
			if err != nil {
				c.logger.Debug("Contact crawl failed", map[string]interface{}{
					"website": b.Website,
					"error":   err.Error(),
				})
				return
			}
			if email != "" {
				b.Email = email
			}
		}(&businesses[i])
	}
	wg.Wait()
}

func (c *Crawler) extractEmail(ctx context.Context, website string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, website, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "market-intel/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("website returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	var candidates []string
	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if idx := strings.Index(addr, "?"); idx >= 0 {
			addr = addr[:idx]
		}
		candidates = append(candidates, addr)
	})
	candidates = append(candidates, emailExpr.FindAllString(doc.Text(), -1)...)

	return pickBusinessEmail(candidates), nil
}

// pickBusinessEmail filters out personal and automated addresses, then
// prefers the conventional front-office prefixes.
func pickBusinessEmail(candidates []string) string {
	var usable []string
	seen := make(map[string]bool)
	for _, raw := range candidates {
		addr := strings.ToLower(strings.TrimSpace(raw))
		if !emailExpr.MatchString(addr) || seen[addr] {
			continue
		}
		seen[addr] = true

		at := strings.LastIndex(addr, "@")
		local, host := addr[:at], addr[at+1:]
		if freeMailHosts[host] {
			continue
		}
		skip := false
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(local, prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		usable = append(usable, addr)
	}

	if len(usable) == 0 {
		return ""
	}
	for _, prefix := range preferredPrefixes {
		for _, addr := range usable {
			if strings.HasPrefix(addr, prefix+"@") || strings.HasPrefix(addr, prefix+".") {
				return addr
			}
		}
	}
	return usable[0]
}
