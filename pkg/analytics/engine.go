// Package analytics turns raw activity and crop records into financial
// insights: summary totals, multi-horizon forecasts, per-crop ROI rankings,
// cost-optimization opportunities, trend signals and a short ranked list of
// recommendations. Everything here is a pure, single-pass computation over
// in-memory records; the engine performs no I/O, keeps no state between calls
// and never mutates its input.
package analytics

import (
	"time"

	"farmlens/entities"
)

type Engine struct {
	cfg Config
	now func() time.Time // seasonal factor depends on the current month
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

// Config returns the engine's active lookup tables.
func (e *Engine) Config() Config { return e.cfg }

// ComputeFinancialInsights runs every analyzer over the given records. The
// caller owns the slices and is responsible for tenant scoping; identical
// input yields identical output (apart from the calendar-month seasonal
// factor, which follows the wall clock).
func (e *Engine) ComputeFinancialInsights(activities []entities.Activity, crops []entities.Crop) FinancialInsights {
	summary := e.summarize(activities)
	buckets := e.bucketByMonth(activities)
	roi := e.analyzeROI(activities, crops)
	opts := e.costOptimizations(activities)
	trends := e.trends(buckets)

	return FinancialInsights{
		Summary:           summary,
		Forecasts:         e.forecasts(len(activities), summary, buckets),
		ROIAnalysis:       roi,
		CostOptimizations: opts,
		Trends:            trends,
		Recommendations:   e.recommendations(summary, trends, roi, opts),
	}
}

// harvestRevenue estimates revenue for one HARVEST record from its yield and
// a best-effort price resolved from the record's free text.
func (e *Engine) harvestRevenue(a entities.Activity) float64 {
	return a.YieldValue() * e.cfg.EstimatePrice(a.Notes+" "+a.CropName)
}

func (e *Engine) summarize(activities []entities.Activity) Summary {
	var totalCosts, totalRevenue float64
	for _, a := range activities {
		totalCosts += a.CostValue()
		if a.Kind == entities.KindHarvest {
			totalRevenue += e.harvestRevenue(a)
		}
	}

	netProfit := totalRevenue - totalCosts
	marginPct := 0.0
	if totalRevenue > 0 {
		marginPct = netProfit / totalRevenue * 100
	}

	return Summary{
		TotalRevenue:    totalRevenue,
		TotalCosts:      totalCosts,
		NetProfit:       netProfit,
		ProfitMarginPct: marginPct,
	}
}
