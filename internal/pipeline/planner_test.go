package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanSearchTerms_KnownIndustry(t *testing.T) {
	terms := PlanSearchTerms("hvac", 3)
	assert.Equal(t, []string{"hvac contractor", "heating and cooling", "air conditioning repair"}, terms)
}

func TestPlanSearchTerms_Deterministic(t *testing.T) {
	first := PlanSearchTerms("restaurant", 4)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PlanSearchTerms("restaurant", 4))
	}
}

func TestPlanSearchTerms_PartialMatch(t *testing.T) {
	assert.Equal(t, PlanSearchTerms("automotive", 3), PlanSearchTerms("auto", 3))
	assert.Equal(t, PlanSearchTerms("plumbing", 3), PlanSearchTerms("plumbing services", 3))
}

func TestPlanSearchTerms_UnknownIndustryFallback(t *testing.T) {
	terms := PlanSearchTerms("taxidermy", 4)
	assert.Equal(t, []string{"taxidermy", "taxidermy service", "taxidermy company", "business"}, terms)
}

func TestPlanSearchTerms_EmptyIndustry(t *testing.T) {
	assert.Equal(t, []string{"business", "local services"}, PlanSearchTerms("", 3))
	assert.Equal(t, []string{"business", "local services"}, PlanSearchTerms("all", 3))
}

func TestPlanSearchTerms_ConcurrentUnknownIndustries(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			terms := PlanSearchTerms("totally-unknown-industry", 3)
			assert.Equal(t, "totally-unknown-industry", terms[0])
		}()
	}
	wg.Wait()
}

func TestPlanSearchTerms_Cap(t *testing.T) {
	assert.Len(t, PlanSearchTerms("hvac", 2), 2)
	assert.Len(t, PlanSearchTerms("hvac", 10), 4)
}
