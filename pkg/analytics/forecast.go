package analytics

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	PeriodNextMonth   = "next_month"
	PeriodNextQuarter = "next_quarter"
	PeriodNextYear    = "next_year"
)

// forecasts projects the three fixed horizons from the monthly baseline.
// activityCount feeds the confidence heuristic.
func (e *Engine) forecasts(activityCount int, s Summary, buckets []monthBucket) []Forecast {
	fc := e.cfg.Forecast

	months := float64(len(buckets))
	if months < 1 {
		months = 1
	}
	avgRevenue := s.TotalRevenue / months
	avgCosts := s.TotalCosts / months

	seasonal := e.seasonalFactor()
	growth := e.growthFactor(buckets)

	monthRevenue := avgRevenue * seasonal * growth
	monthCosts := avgCosts * fc.MonthCostInflation
	quarterRevenue := avgRevenue * 3 * seasonal * growth
	quarterCosts := avgCosts * 3 * fc.QuarterCostInflation
	yearRevenue := avgRevenue * 12 * growth * fc.YearRevenueUplift
	yearCosts := avgCosts * 12 * fc.YearCostInflation

	return []Forecast{
		{
			Period:           PeriodNextMonth,
			ProjectedRevenue: monthRevenue,
			ProjectedCosts:   monthCosts,
			ProjectedProfit:  monthRevenue - monthCosts,
			Confidence:       confidence(activityCount, 0),
			Factors: []string{
				"Based on historical performance",
				"Seasonal adjustments applied",
				"Growth trend factored in",
			},
		},
		{
			Period:           PeriodNextQuarter,
			ProjectedRevenue: quarterRevenue,
			ProjectedCosts:   quarterCosts,
			ProjectedProfit:  quarterRevenue - quarterCosts,
			Confidence:       confidence(activityCount, 10),
			Factors: []string{
				"Quarterly seasonal patterns",
				"Market demand projections",
				"Operational efficiency gains",
			},
		},
		{
			Period:           PeriodNextYear,
			ProjectedRevenue: yearRevenue,
			ProjectedCosts:   yearCosts,
			ProjectedProfit:  yearRevenue - yearCosts,
			Confidence:       confidence(activityCount, 20),
			Factors: []string{
				"Annual growth projections",
				"Infrastructure improvements",
				"Market expansion opportunities",
			},
		},
	}
}

// seasonalFactor is a fixed growing-season heuristic keyed on the current
// calendar month.
func (e *Engine) seasonalFactor() float64 {
	m := e.now().Month()
	if m >= time.March && m <= time.August {
		return e.cfg.Forecast.GrowingSeasonFactor
	}
	return e.cfg.Forecast.OffSeasonFactor
}

// growthFactor is the clamped ratio of recent to earlier monthly revenue.
func (e *Engine) growthFactor(buckets []monthBucket) float64 {
	fc := e.cfg.Forecast
	if len(buckets) < 2 {
		return fc.GrowthFactorDefault
	}
	revenue := make([]float64, len(buckets))
	for i, b := range buckets {
		revenue[i] = b.revenue
	}
	earlier := stat.Mean(head(revenue, 3), nil)
	if earlier == 0 {
		return fc.GrowthFactorFresh
	}
	recent := stat.Mean(tail(revenue, 3), nil)
	return math.Max(fc.GrowthFactorMin, math.Min(fc.GrowthFactorMax, recent/earlier))
}

// confidence grows with sample size and shrinks with horizon length, clamped
// to [40,90]. It is a reliability hint, not a statistical interval.
func confidence(activityCount, horizonPenalty int) int {
	c := 30 + 2*activityCount - horizonPenalty
	if c > 90 {
		c = 90
	}
	if c < 40 {
		c = 40
	}
	return c
}
