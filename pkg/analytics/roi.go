package analytics

import (
	"sort"
	"strings"

	"farmlens/entities"
)

const (
	PerformanceExcellent    = "Excellent"
	PerformanceGood         = "Good"
	PerformanceAverage      = "Average"
	PerformanceBelowAverage = "Below Average"
	PerformancePoor         = "Poor"
)

// analyzeROI ranks crops by projected return. Activities are associated with
// a crop by id, falling back to a name-substring match over the notes text,
// which can over-match (see Config.EstimatePrice for the same trade-off).
func (e *Engine) analyzeROI(activities []entities.Activity, crops []entities.Crop) []ROIEntry {
	entries := make([]ROIEntry, 0, len(crops))

	for _, c := range crops {
		name := strings.ToLower(c.Name)

		var investment, actualRevenue float64
		for _, a := range activities {
			if a.CropID != c.ID && !strings.Contains(strings.ToLower(a.Notes), name) {
				continue
			}
			if a.Kind == entities.KindHarvest {
				actualRevenue += e.harvestRevenue(a)
			} else {
				investment += a.CostValue()
			}
		}

		projectedRevenue := e.cfg.ExpectedYield(c.Name) * e.cfg.EstimatePrice(c.Name)
		actualROI := roiPct(actualRevenue, investment)
		projectedROI := roiPct(projectedRevenue, investment)

		entries = append(entries, ROIEntry{
			CropName:         c.Name,
			InvestmentCost:   investment,
			ActualRevenue:    actualRevenue,
			ProjectedRevenue: projectedRevenue,
			ActualROI:        actualROI,
			ProjectedROI:     projectedROI,
			Recommendation:   roiRecommendation(projectedROI),
			Performance:      categorizePerformance(actualROI),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ProjectedROI > entries[j].ProjectedROI })
	return entries
}

// roiPct guards the zero-investment case: no spend means no defined return.
func roiPct(revenue, investment float64) float64 {
	if investment <= 0 {
		return 0
	}
	return (revenue - investment) / investment * 100
}

func roiRecommendation(projectedROI float64) string {
	switch {
	case projectedROI > 50:
		return "Excellent investment - consider expanding"
	case projectedROI > 25:
		return "Good returns - maintain current strategy"
	case projectedROI > 0:
		return "Modest returns - look for optimization opportunities"
	default:
		return "Consider alternative crops or cost reduction"
	}
}

func categorizePerformance(roi float64) string {
	switch {
	case roi > 50:
		return PerformanceExcellent
	case roi > 25:
		return PerformanceGood
	case roi > 10:
		return PerformanceAverage
	case roi > 0:
		return PerformanceBelowAverage
	default:
		return PerformancePoor
	}
}
