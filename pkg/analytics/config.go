package analytics

import (
	"strings"

	"farmlens/entities"
)

// PricePoint maps a crop keyword to an estimated market price per kg. Lookup
// is a case-insensitive substring scan in declaration order; first match wins.
type PricePoint struct {
	Keyword string
	Price   float64
}

// OptimizationProfile says how much of a category's spend is typically
// recoverable and what to do about it.
type OptimizationProfile struct {
	Retention       float64 // optimizedCost = currentCost * Retention
	Recommendations []string
	Implementation  string // Easy|Moderate|Complex
	Priority        string // High|Medium|Low
}

// ForecastConfig holds the projection heuristics. The defaults reproduce the
// long-standing behavior; none of them come from a fitted model, so treat them
// as tunable business rules.
type ForecastConfig struct {
	GrowingSeasonFactor  float64 // revenue multiplier, March through August
	OffSeasonFactor      float64
	GrowthFactorMin      float64 // clamp on recent/earlier revenue ratio
	GrowthFactorMax      float64
	GrowthFactorDefault  float64 // fewer than 2 month buckets
	GrowthFactorFresh    float64 // earlier revenue mean is 0
	MonthCostInflation   float64
	QuarterCostInflation float64
	YearRevenueUplift    float64
	YearCostInflation    float64
}

type Config struct {
	Prices             []PricePoint
	DefaultPrice       float64
	ExpectedYields     map[string]float64 // lowercase crop name -> kg per season
	DefaultYield       float64
	Profiles           map[entities.ActivityKind]OptimizationProfile
	CostNoiseFloor     float64 // category totals below this are skipped
	Forecast           ForecastConfig
	MaxRecommendations int
}

// EstimatePrice resolves a best-effort price from free text (notes or a crop
// name). The substring scan accepts false positives from keyword overlap;
// unmatched text gets DefaultPrice.
func (c Config) EstimatePrice(text string) float64 {
	t := strings.ToLower(text)
	for _, p := range c.Prices {
		if strings.Contains(t, p.Keyword) {
			return p.Price
		}
	}
	return c.DefaultPrice
}

// ExpectedYield returns the per-season yield estimate for a crop name.
func (c Config) ExpectedYield(name string) float64 {
	if y, ok := c.ExpectedYields[strings.ToLower(name)]; ok {
		return y
	}
	return c.DefaultYield
}

// DefaultConfig returns the stock lookup tables and heuristics.
func DefaultConfig() Config {
	return Config{
		Prices: []PricePoint{
			{"tomato", 3.5}, {"tomatoes", 3.5},
			{"lettuce", 2.0},
			{"basil", 15.0},
			{"pepper", 4.0}, {"peppers", 4.0},
			{"carrot", 1.5}, {"carrots", 1.5},
			{"spinach", 2.5},
			{"cucumber", 2.0}, {"cucumbers", 2.0},
			{"kale", 3.0},
			{"zucchini", 1.5},
			{"bean", 2.5}, {"beans", 2.5},
			{"radish", 2.0}, {"radishes", 2.0},
			{"strawberry", 8.0}, {"strawberries", 8.0},
		},
		DefaultPrice: 2.5,
		ExpectedYields: map[string]float64{
			"tomatoes":     3.0,
			"lettuce":      0.75,
			"basil":        0.15,
			"peppers":      1.5,
			"carrots":      2.5,
			"spinach":      1.5,
			"cucumber":     5.0,
			"kale":         1.5,
			"zucchini":     4.0,
			"beans":        1.5,
			"radishes":     1.5,
			"strawberries": 0.75,
		},
		DefaultYield: 2.0,
		Profiles: map[entities.ActivityKind]OptimizationProfile{
			entities.KindIrrigation: {
				Retention: 0.8,
				Recommendations: []string{
					"Install drip irrigation system",
					"Use water-efficient scheduling",
					"Consider rainwater harvesting",
				},
				Implementation: "Moderate",
				Priority:       "High",
			},
			entities.KindFertilizer: {
				Retention: 0.85,
				Recommendations: []string{
					"Implement composting program",
					"Use organic fertilizers",
					"Soil testing for precise application",
				},
				Implementation: "Easy",
				Priority:       "Medium",
			},
			entities.KindPestControl: {
				Retention: 0.75,
				Recommendations: []string{
					"Integrated pest management",
					"Companion planting",
					"Beneficial insect habitats",
				},
				Implementation: "Moderate",
				Priority:       "High",
			},
		},
		CostNoiseFloor: 50,
		Forecast: ForecastConfig{
			GrowingSeasonFactor:  1.2,
			OffSeasonFactor:      0.9,
			GrowthFactorMin:      0.8,
			GrowthFactorMax:      1.3,
			GrowthFactorDefault:  1.0,
			GrowthFactorFresh:    1.05,
			MonthCostInflation:   1.05,
			QuarterCostInflation: 1.03,
			YearRevenueUplift:    1.1,
			YearCostInflation:    1.08,
		},
		MaxRecommendations: 5,
	}
}
