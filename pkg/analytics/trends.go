package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"farmlens/entities"
)

// monthBucket aggregates revenue and cost per calendar month.
type monthBucket struct {
	key     string // ISO year-month
	revenue float64
	costs   float64
}

func (e *Engine) bucketByMonth(activities []entities.Activity) []monthBucket {
	byKey := map[string]*monthBucket{}
	for _, a := range activities {
		k := a.OccurredAt.UTC().Format("2006-01")
		b := byKey[k]
		if b == nil {
			b = &monthBucket{key: k}
			byKey[k] = b
		}
		if a.Kind == entities.KindHarvest {
			b.revenue += e.harvestRevenue(a)
		}
		b.costs += a.CostValue()
	}

	out := make([]monthBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func (e *Engine) trends(buckets []monthBucket) Trends {
	revenue := make([]float64, len(buckets))
	costs := make([]float64, len(buckets))
	profit := make([]float64, len(buckets))
	for i, b := range buckets {
		revenue[i] = b.revenue
		costs[i] = b.costs
		profit[i] = b.revenue - b.costs
	}
	return Trends{
		RevenueGrowthPct: growthRate(revenue),
		CostTrendPct:     growthRate(costs),
		ProfitTrendPct:   growthRate(profit),
	}
}

// growthRate compares the mean of the last three values against the mean of
// the first three: (recent-earlier)/earlier*100. Under two values, or with an
// earlier mean of zero, the rate is defined as 0.
func growthRate(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	recent := stat.Mean(tail(values, 3), nil)
	earlier := stat.Mean(head(values, 3), nil)
	if earlier == 0 {
		return 0
	}
	return (recent - earlier) / earlier * 100
}

func head(v []float64, n int) []float64 {
	if len(v) < n {
		return v
	}
	return v[:n]
}

func tail(v []float64, n int) []float64 {
	if len(v) < n {
		return v
	}
	return v[len(v)-n:]
}
