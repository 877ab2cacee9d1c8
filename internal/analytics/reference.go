// internal/analytics/reference.go
package analytics

import "strings"

// revenueCoefficients are the log-curve coefficients per industry.
// Alpha scales review volume, beta scales photo volume.
type revenueCoefficients struct {
	Alpha float64
	Beta  float64
}

var industryCoefficients = map[string]revenueCoefficients{
	"hvac":        {Alpha: 14000, Beta: 1400},
	"plumbing":    {Alpha: 13000, Beta: 1300},
	"electrical":  {Alpha: 13500, Beta: 1350},
	"landscaping": {Alpha: 10000, Beta: 1000},
	"restaurant":  {Alpha: 12000, Beta: 1200},
	"automotive":  {Alpha: 11000, Beta: 1100},
	"retail":      {Alpha: 9000, Beta: 900},
	"healthcare":  {Alpha: 20000, Beta: 2000},
	"legal":       {Alpha: 25000, Beta: 2500},
	"accounting":  {Alpha: 18000, Beta: 1800},
	"general":     {Alpha: 12000, Beta: 1200},
}

func coefficientsFor(industry string) revenueCoefficients {
	key := strings.ToLower(strings.TrimSpace(industry))
	if c, ok := industryCoefficients[key]; ok {
		return c
	}
	return industryCoefficients["general"]
}

// averageIndustryRevenue feeds the top-down market sizing.
var averageIndustryRevenue = map[string]float64{
	"hvac":        850000,
	"plumbing":    720000,
	"electrical":  780000,
	"landscaping": 540000,
	"restaurant":  1100000,
	"automotive":  940000,
	"retail":      620000,
	"healthcare":  1500000,
	"legal":       900000,
	"accounting":  680000,
	"general":     750000,
}

func averageRevenueFor(industry string) float64 {
	key := strings.ToLower(strings.TrimSpace(industry))
	if v, ok := averageIndustryRevenue[key]; ok {
		return v
	}
	return averageIndustryRevenue["general"]
}

// geographicMultipliers adjust market sizing by state cost levels.
var geographicMultipliers = map[string]float64{
	"CA": 1.4,
	"NY": 1.3,
	"MA": 1.25,
	"WA": 1.2,
	"IL": 1.1,
	"TX": 1.1,
	"FL": 1.05,
	"PA": 1.0,
	"AZ": 0.95,
	"OH": 0.9,
}

func geographicMultiplierFor(state string) float64 {
	if m, ok := geographicMultipliers[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return m
	}
	return 1.0
}

// censusEntry holds the population base used by the density calculator.
type censusEntry struct {
	Population int64
	Households int64
}

var metroCensus = map[string]censusEntry{
	"san francisco": {Population: 884279, Households: 378438},
	"los angeles":   {Population: 3971883, Households: 1383869},
	"new york":      {Population: 8230290, Households: 3147295},
	"chicago":       {Population: 2695598, Households: 1061928},
	"houston":       {Population: 2325502, Households: 858374},
	"phoenix":       {Population: 1680992, Households: 590149},
	"philadelphia":  {Population: 1584064, Households: 634561},
	"san antonio":   {Population: 1547253, Households: 524246},
	"san diego":     {Population: 1423851, Households: 523240},
	"dallas":        {Population: 1343573, Households: 516639},
}

const (
	defaultPopulation int64 = 100000
	defaultHouseholds int64 = 38000
)

// lookupCensus resolves a location string against the metro table.
// The boolean reports whether the metro was actually found; callers
// falling back to the defaults should flag the result as degraded.
func lookupCensus(location string) (censusEntry, bool) {
	key := strings.ToLower(strings.TrimSpace(location))
	if entry, ok := metroCensus[key]; ok {
		return entry, true
	}
	// "San Francisco, CA" still resolves
	for metro, entry := range metroCensus {
		if strings.Contains(key, metro) {
			return entry, true
		}
	}
	return censusEntry{Population: defaultPopulation, Households: defaultHouseholds}, false
}

// digitalBenchmark describes the typical and leading digital-presence
// scores per industry plus the modeled return on closing the gap.
type digitalBenchmark struct {
	Average       float64
	Leaders       float64
	ROIMultiplier float64
}

var digitalBenchmarks = map[string]digitalBenchmark{
	"hvac":        {Average: 42, Leaders: 78, ROIMultiplier: 1.8},
	"plumbing":    {Average: 38, Leaders: 75, ROIMultiplier: 1.9},
	"electrical":  {Average: 45, Leaders: 82, ROIMultiplier: 1.7},
	"landscaping": {Average: 51, Leaders: 85, ROIMultiplier: 2.1},
	"restaurant":  {Average: 68, Leaders: 92, ROIMultiplier: 1.4},
	"retail":      {Average: 72, Leaders: 94, ROIMultiplier: 1.3},
	"healthcare":  {Average: 55, Leaders: 88, ROIMultiplier: 1.6},
	"automotive":  {Average: 48, Leaders: 81, ROIMultiplier: 1.8},
}

func benchmarkFor(industry string) digitalBenchmark {
	key := strings.ToLower(strings.TrimSpace(industry))
	if b, ok := digitalBenchmarks[key]; ok {
		return b
	}
	return digitalBenchmarks["hvac"]
}
