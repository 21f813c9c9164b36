package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmlens/entities"
)

func f64(v float64) *float64 { return &v }

// fixedEngine pins the clock inside the growing season so seasonal behavior
// is deterministic.
func fixedEngine() *Engine {
	e := NewEngine(DefaultConfig())
	e.now = func() time.Time { return time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC) }
	return e
}

func offSeasonEngine() *Engine {
	e := NewEngine(DefaultConfig())
	e.now = func() time.Time { return time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestSummarize_HarvestRevenueAndCosts(t *testing.T) {
	e := fixedEngine()
	activities := []entities.Activity{
		{Kind: entities.KindHarvest, YieldAmount: f64(10), Notes: "tomatoes", OccurredAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindFertilizer, Cost: f64(40), OccurredAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	s := e.summarize(activities)

	assert.Equal(t, 35.0, s.TotalRevenue, "10 kg at the 3.5 tomato price")
	assert.Equal(t, 40.0, s.TotalCosts)
	assert.Equal(t, -5.0, s.NetProfit)
	assert.InDelta(t, -14.29, s.ProfitMarginPct, 0.01)
}

func TestSummarize_EmptyInput(t *testing.T) {
	s := fixedEngine().summarize(nil)

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalCosts)
	assert.Zero(t, s.NetProfit)
	assert.Zero(t, s.ProfitMarginPct, "margin is defined as 0 when revenue is 0")
}

func TestSummarize_AbsentCostAndYieldTreatedAsZero(t *testing.T) {
	s := fixedEngine().summarize([]entities.Activity{
		{Kind: entities.KindIrrigation},
		{Kind: entities.KindHarvest, Notes: "basil"},
	})

	assert.Zero(t, s.TotalCosts)
	assert.Zero(t, s.TotalRevenue)
}

func TestComputeFinancialInsights_EmptyInput(t *testing.T) {
	in := fixedEngine().ComputeFinancialInsights(nil, nil)

	assert.Zero(t, in.Summary.TotalRevenue)
	assert.Len(t, in.Forecasts, 3)
	for _, fc := range in.Forecasts {
		assert.Equal(t, 40, fc.Confidence, "confidence floor with no data")
		assert.Zero(t, fc.ProjectedRevenue)
		assert.Zero(t, fc.ProjectedCosts)
	}
	assert.Empty(t, in.ROIAnalysis)
	assert.Empty(t, in.CostOptimizations)
	assert.Zero(t, in.Trends.RevenueGrowthPct)
}

func TestComputeFinancialInsights_Deterministic(t *testing.T) {
	e := fixedEngine()
	activities := []entities.Activity{
		{Kind: entities.KindHarvest, YieldAmount: f64(12), Notes: "lettuce", OccurredAt: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindIrrigation, Cost: f64(80), OccurredAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindHarvest, YieldAmount: f64(5), Notes: "kale", OccurredAt: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}
	crops := []entities.Crop{
		{ID: "c1", Name: "Lettuce"},
		{ID: "c2", Name: "Kale"},
	}

	a := e.ComputeFinancialInsights(activities, crops)
	b := e.ComputeFinancialInsights(activities, crops)

	assert.Equal(t, a, b, "identical input must yield identical output")
}

func TestComputeFinancialInsights_DoesNotMutateInput(t *testing.T) {
	activities := []entities.Activity{
		{Kind: entities.KindHarvest, YieldAmount: f64(10), Notes: "beans", OccurredAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	before := activities[0]

	fixedEngine().ComputeFinancialInsights(activities, []entities.Crop{{ID: "c", Name: "Beans"}})

	assert.Equal(t, before, activities[0])
}
