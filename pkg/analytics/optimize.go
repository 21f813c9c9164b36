package analytics

import (
	"sort"

	"farmlens/entities"
)

// costOptimizations totals spend per activity kind and emits a savings entry
// for every kind that clears the noise floor and has an optimization profile.
// Kinds without a profile are silently dropped.
func (e *Engine) costOptimizations(activities []entities.Activity) []CostOptimization {
	totals := map[entities.ActivityKind]float64{}
	for _, a := range activities {
		totals[a.Kind] += a.CostValue()
	}

	out := make([]CostOptimization, 0, len(e.cfg.Profiles))
	for _, kind := range entities.Kinds() {
		total := totals[kind]
		if total < e.cfg.CostNoiseFloor {
			continue
		}
		profile, ok := e.cfg.Profiles[kind]
		if !ok {
			continue
		}
		optimized := total * profile.Retention
		out = append(out, CostOptimization{
			Category:         kind,
			CurrentCost:      total,
			OptimizedCost:    optimized,
			PotentialSavings: total - optimized,
			Recommendations:  profile.Recommendations,
			Implementation:   profile.Implementation,
			Priority:         profile.Priority,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PotentialSavings > out[j].PotentialSavings })
	return out
}
