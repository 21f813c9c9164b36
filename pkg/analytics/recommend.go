package analytics

import "fmt"

// recommendations merges the analyzer outputs into a short prioritized list.
// Rules run in fixed order, each contributes at most one line, and the list
// is capped at MaxRecommendations.
func (e *Engine) recommendations(s Summary, t Trends, roi []ROIEntry, opts []CostOptimization) []string {
	recs := []string{}

	if s.ProfitMarginPct < 20 {
		recs = append(recs, "Consider increasing prices or reducing costs to improve profit margin")
	} else if s.ProfitMarginPct > 40 {
		recs = append(recs, "Excellent profit margins - consider reinvesting in expansion")
	}

	if t.RevenueGrowthPct < 0 {
		recs = append(recs, "Focus on revenue growth through new crops or market expansion")
	}
	if t.CostTrendPct > 10 {
		recs = append(recs, "Cost control measures needed - review high-cost categories")
	}

	for _, r := range roi {
		if r.Performance == PerformanceExcellent {
			recs = append(recs, fmt.Sprintf("Consider expanding %s production - highest ROI crop", r.CropName))
			break
		}
	}
	for _, r := range roi {
		if r.Performance == PerformancePoor {
			recs = append(recs, fmt.Sprintf("Review %s - consider alternative crops or optimization", r.CropName))
			break
		}
	}

	for _, o := range opts {
		if o.Priority == "High" {
			recs = append(recs, fmt.Sprintf("Immediate cost savings available in %s", o.Category))
			break
		}
	}

	if len(recs) > e.cfg.MaxRecommendations {
		recs = recs[:e.cfg.MaxRecommendations]
	}
	return recs
}
