// internal/analytics/succession.go
package analytics

import (
	"fmt"
	"strings"

	"market-intel/internal/models"
)

// SuccessionInputs carries everything the succession model consumes. The
// pipeline fills the estimates in from review signals when hard data is
// missing.
type SuccessionInputs struct {
	Name            string
	Website         string
	Rating          float64
	Revenue         float64
	YearsInBusiness int
	EmployeeCount   int
}

var familyIndicators = []string{"family", "sons", "brothers", "sr", "jr", "heritage", "legacy", "& son"}

// SuccessionRisk scores how likely a business is approaching an ownership
// transition. Sub-scores are weighted: age 30%, scale 25%, leadership 20%,
// digital 15%, performance 10%.
func AssessSuccessionRisk(in SuccessionInputs) models.SuccessionRisk {
	ageRisk := ageRisk(in.YearsInBusiness)
	scaleRisk := scaleRisk(in.Revenue)
	leadershipRisk := leadershipSignals(in.Name, in.Website)
	digitalRisk := digitalRisk(in.Website)
	performanceRisk := clampScore(60 - in.Rating*12 - float64(in.EmployeeCount)*2)

	score := ageRisk*0.30 + scaleRisk*0.25 + leadershipRisk*0.20 + digitalRisk*0.15 + performanceRisk*0.10

	level, timeline := successionLevel(score)

	var factors []string
	if ageRisk > 60 {
		factors = append(factors, fmt.Sprintf("Business Maturity (%d years)", in.YearsInBusiness))
	}
	if scaleRisk > 60 {
		factors = append(factors, fmt.Sprintf("Scale Limitations ($%.0f revenue)", in.Revenue))
	}
	if leadershipRisk > 60 {
		factors = append(factors, "Leadership Transition Signals")
	}
	if digitalRisk > 60 {
		factors = append(factors, "Limited Digital Infrastructure")
	}
	if performanceRisk > 50 {
		factors = append(factors, "Performance Challenges")
	}
	if len(factors) == 0 {
		factors = []string{"General Market Conditions"}
	}

	return models.SuccessionRisk{
		Score:            score,
		Level:            level,
		Timeline:         timeline,
		AgeRisk:          ageRisk,
		ScaleRisk:        scaleRisk,
		LeadershipRisk:   leadershipRisk,
		DigitalRisk:      digitalRisk,
		PerformanceRisk:  performanceRisk,
		Factors:          factors,
		OwnerAgeEstimate: estimateOwnerAge(in.YearsInBusiness, leadershipRisk),
	}
}

func ageRisk(years int) float64 {
	var risk float64
	switch {
	case years >= 25:
		risk = 85 + float64(years-25)*2
	case years >= 15:
		risk = 45 + float64(years-15)*4
	default:
		risk = float64(years) * 3
	}
	return clampScore(risk)
}

func scaleRisk(revenue float64) float64 {
	var risk float64
	switch {
	case revenue < 500000:
		risk = 80
	case revenue < 1500000:
		risk = 65 - (revenue-500000)/50000
	case revenue < 5000000:
		risk = 45 - (revenue-1500000)/200000
	default:
		risk = 20
	}
	return clampScore(risk)
}

func leadershipSignals(name, website string) float64 {
	score := 50.0

	lowerName := strings.ToLower(name)
	for _, indicator := range familyIndicators {
		if strings.Contains(lowerName, indicator) {
			score += 25
			break
		}
	}

	if website != "" {
		domainAge := estimateDomainAge(website)
		lowerSite := strings.ToLower(website)
		if domainAge > 10 {
			for _, word := range []string{"family", "sons", "brothers", "heritage"} {
				if strings.Contains(lowerSite, word) {
					score += 20
					break
				}
			}
		}
		if domainAge > 15 {
			score += 15
		}
	}

	return clampScore(score)
}

func digitalRisk(website string) float64 {
	if website == "" {
		return 70
	}
	return clampScore(60 - float64(estimateDomainAge(website))*5)
}

// estimateDomainAge infers approximate domain age from TLD and naming
// patterns. No WHOIS lookup; the heuristic is intentionally coarse and
// fully deterministic so repeated scans agree.
func estimateDomainAge(website string) int {
	domain := strings.ToLower(website)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.IndexByte(domain, '/'); i >= 0 {
		domain = domain[:i]
	}
	if domain == "" {
		return 0
	}

	age := 0
	if strings.Contains(domain, ".com") {
		age += 8
	} else if strings.Contains(domain, ".net") || strings.Contains(domain, ".org") {
		age += 12
	}

	if len(domain) < 10 {
		age += 5
	} else if len(domain) > 20 {
		age -= 2
	}

	for _, pattern := range []string{"service", "company", "corp", "inc"} {
		if strings.Contains(domain, pattern) {
			age += 6
			break
		}
	}

	if age < 0 {
		age = 0
	}
	if age > 25 {
		age = 25
	}
	return age
}

func estimateOwnerAge(yearsInBusiness int, leadershipRisk float64) int {
	estimated := 35 + yearsInBusiness
	if leadershipRisk > 70 {
		estimated += 8
	} else if leadershipRisk < 30 {
		estimated -= 5
	}

	if estimated < 30 {
		estimated = 30
	}
	if estimated > 85 {
		estimated = 85
	}
	return estimated
}

func successionLevel(score float64) (string, string) {
	switch {
	case score >= 85:
		return "Critical - Immediate Succession Likely", "3-12 months"
	case score >= 70:
		return "High - Strong Succession Signals", "1-2 years"
	case score >= 50:
		return "Moderate - Succession Planning Phase", "2-5 years"
	case score >= 30:
		return "Low - Stable Operations", "5-10 years"
	default:
		return "Minimal - Established Operations", "10+ years"
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
