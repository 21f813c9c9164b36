package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmlens/entities"
)

func TestConfidence(t *testing.T) {
	assert.Equal(t, 40, confidence(0, 0), "floor")
	assert.Equal(t, 40, confidence(5, 0))
	assert.Equal(t, 42, confidence(6, 0))
	assert.Equal(t, 90, confidence(100, 0), "cap")
	assert.Equal(t, 70, confidence(30, 20), "penalty applies before the cap")
	assert.Equal(t, 50, confidence(15, 10))
}

func TestSeasonalFactor(t *testing.T) {
	assert.Equal(t, 1.2, fixedEngine().seasonalFactor(), "April is growing season")
	assert.Equal(t, 0.9, offSeasonEngine().seasonalFactor(), "November is off season")
}

func TestGrowthFactor(t *testing.T) {
	e := fixedEngine()

	assert.Equal(t, 1.0, e.growthFactor(nil), "default under two buckets")
	assert.Equal(t, 1.0, e.growthFactor([]monthBucket{{revenue: 10}}))

	fresh := []monthBucket{{revenue: 0}, {revenue: 0}, {revenue: 0}, {revenue: 50}}
	assert.Equal(t, 1.05, e.growthFactor(fresh), "no earlier revenue")

	surging := []monthBucket{{revenue: 10}, {revenue: 10}, {revenue: 10}, {revenue: 100}, {revenue: 100}, {revenue: 100}}
	assert.Equal(t, 1.3, e.growthFactor(surging), "clamped at the top")

	collapsing := []monthBucket{{revenue: 100}, {revenue: 100}, {revenue: 100}, {revenue: 10}, {revenue: 10}, {revenue: 10}}
	assert.Equal(t, 0.8, e.growthFactor(collapsing), "clamped at the bottom")

	mild := []monthBucket{{revenue: 100}, {revenue: 100}, {revenue: 100}, {revenue: 110}, {revenue: 110}, {revenue: 110}}
	assert.InDelta(t, 1.1, e.growthFactor(mild), 1e-9)
}

func TestForecasts_HorizonArithmetic(t *testing.T) {
	e := fixedEngine() // seasonal 1.2

	// Two month buckets, flat revenue so growth factor stays 1.0.
	activities := []entities.Activity{
		{Kind: entities.KindHarvest, YieldAmount: f64(40), Notes: "lettuce", OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindHarvest, YieldAmount: f64(40), Notes: "lettuce", OccurredAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindIrrigation, Cost: f64(60), OccurredAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{Kind: entities.KindIrrigation, Cost: f64(60), OccurredAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}
	s := e.summarize(activities)
	buckets := e.bucketByMonth(activities)
	// an activity count high enough that no confidence clamp kicks in
	fcs := e.forecasts(20, s, buckets)

	assert.Len(t, fcs, 3)
	assert.Equal(t, PeriodNextMonth, fcs[0].Period)
	assert.Equal(t, PeriodNextQuarter, fcs[1].Period)
	assert.Equal(t, PeriodNextYear, fcs[2].Period)

	// avg monthly revenue 80, avg monthly costs 60
	assert.InDelta(t, 80*1.2, fcs[0].ProjectedRevenue, 1e-9)
	assert.InDelta(t, 60*1.05, fcs[0].ProjectedCosts, 1e-9)
	assert.InDelta(t, fcs[0].ProjectedRevenue-fcs[0].ProjectedCosts, fcs[0].ProjectedProfit, 1e-9)

	assert.InDelta(t, 80*3*1.2, fcs[1].ProjectedRevenue, 1e-9)
	assert.InDelta(t, 60*3*1.03, fcs[1].ProjectedCosts, 1e-9)

	// year horizon skips the seasonal factor and adds its own uplift
	assert.InDelta(t, 80*12*1.1, fcs[2].ProjectedRevenue, 1e-9)
	assert.InDelta(t, 60*12*1.08, fcs[2].ProjectedCosts, 1e-9)

	assert.Equal(t, fcs[0].Confidence-10, fcs[1].Confidence)
	assert.Equal(t, fcs[0].Confidence-20, fcs[2].Confidence)
	for _, fc := range fcs {
		assert.NotEmpty(t, fc.Factors)
	}
}

func TestForecasts_ZeroMonthsGuard(t *testing.T) {
	e := fixedEngine()
	fcs := e.forecasts(0, Summary{}, nil)

	for _, fc := range fcs {
		assert.Zero(t, fc.ProjectedRevenue)
		assert.Zero(t, fc.ProjectedCosts)
		assert.Equal(t, 40, fc.Confidence)
	}
}
