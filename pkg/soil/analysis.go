// Package soil rates a single lab soil test: per-parameter ratings with
// canned advice, a weighted 0-100 health score, and amendment/practice/crop
// recommendations derived from it. Pure functions throughout; one test is an
// atomic snapshot and is never merged with another.
package soil

import "farmlens/entities"

const (
	RatingVeryLow  = "Very Low"
	RatingLow      = "Low"
	RatingOptimal  = "Optimal"
	RatingModerate = "Moderate"
	RatingGood     = "Good"
	RatingVeryGood = "Very Good"
	RatingHigh     = "High"
	RatingVeryHigh = "Very High"

	HealthExcellent = "Excellent"
	HealthGood      = "Good"
	HealthFair      = "Fair"
	HealthPoor      = "Poor"
)

type ParameterAssessment struct {
	Value          float64 `json:"value"`
	Rating         string  `json:"rating"`
	Recommendation string  `json:"recommendation"`
}

type Nutrients struct {
	Nitrogen   ParameterAssessment `json:"nitrogen"`
	Phosphorus ParameterAssessment `json:"phosphorus"`
	Potassium  ParameterAssessment `json:"potassium"`
}

type OverallHealth struct {
	Score         int      `json:"score"` // 0-100
	Rating        string   `json:"rating"`
	PrimaryIssues []string `json:"primary_issues"`
}

type Analysis struct {
	PH            ParameterAssessment `json:"ph"`
	OrganicMatter ParameterAssessment `json:"organic_matter"`
	Nutrients     Nutrients           `json:"nutrients"`
	OverallHealth OverallHealth       `json:"overall_health"`
}

// band is one row of an ordered threshold table: values below limit (or equal,
// when inclusive) fall into the band. The final open-ended band is passed
// separately to classify.
type band struct {
	limit     float64
	inclusive bool
	rating    string
	advice    string
}

func classify(v float64, bands []band, over band) ParameterAssessment {
	for _, b := range bands {
		if v < b.limit || (b.inclusive && v == b.limit) {
			return ParameterAssessment{Value: v, Rating: b.rating, Recommendation: b.advice}
		}
	}
	return ParameterAssessment{Value: v, Rating: over.rating, Recommendation: over.advice}
}

var phBands = []band{
	{limit: 5.0, rating: RatingVeryLow, advice: "Apply lime to raise pH. Very acidic soil limits nutrient availability."},
	{limit: 6.0, rating: RatingLow, advice: "Consider liming to raise pH for better nutrient availability."},
	{limit: 7.0, inclusive: true, rating: RatingOptimal, advice: "pH is in optimal range for most crops. Maintain current levels."},
	{limit: 8.0, inclusive: true, rating: RatingHigh, advice: "Slightly alkaline. Monitor for nutrient deficiencies, especially iron."},
}

var phOver = band{rating: RatingVeryHigh, advice: "Very alkaline. Apply sulfur or acidifying amendments to lower pH."}

var organicMatterBands = []band{
	{limit: 2.0, rating: RatingVeryLow, advice: "Critical need for organic matter. Add compost, manure, or cover crops."},
	{limit: 3.0, rating: RatingLow, advice: "Increase organic matter through compost, manure, or green manures."},
	{limit: 4.0, rating: RatingModerate, advice: "Continue building organic matter with regular additions of organic materials."},
	{limit: 6.0, rating: RatingGood, advice: "Good organic matter levels. Maintain with regular organic additions."},
}

var organicMatterOver = band{rating: RatingVeryGood, advice: "Excellent organic matter levels. Continue current management practices."}

var nitrogenBands = []band{
	{limit: 20, rating: RatingLow, advice: "Apply nitrogen fertilizer or organic nitrogen sources like compost or manure."},
	{limit: 40, rating: RatingModerate, advice: "Adequate nitrogen for most crops. Monitor based on crop requirements."},
	{limit: 60, rating: RatingGood, advice: "Good nitrogen levels. Adjust applications based on specific crop needs."},
}

var nitrogenOver = band{rating: RatingHigh, advice: "High nitrogen levels. Reduce applications to prevent environmental issues."}

var phosphorusBands = []band{
	{limit: 15, rating: RatingLow, advice: "Apply phosphorus fertilizer. Rock phosphate or bone meal for organic systems."},
	{limit: 30, rating: RatingModerate, advice: "Adequate phosphorus for most crops. Monitor young plant development."},
	{limit: 50, rating: RatingGood, advice: "Good phosphorus levels. Minimal additional applications needed."},
}

var phosphorusOver = band{rating: RatingHigh, advice: "High phosphorus levels. Avoid additional applications to prevent runoff."}

var potassiumBands = []band{
	{limit: 150, rating: RatingLow, advice: "Apply potassium fertilizer. Potash or wood ash for organic systems."},
	{limit: 300, rating: RatingModerate, advice: "Adequate potassium for most crops. Monitor for stress symptoms."},
	{limit: 500, rating: RatingGood, advice: "Good potassium levels. Minimal additional applications needed."},
}

var potassiumOver = band{rating: RatingHigh, advice: "High potassium levels. Reduce applications and monitor crop quality."}

// Analyze rates each measured parameter and computes the composite health
// score for one soil test.
func Analyze(t entities.SoilTest) Analysis {
	return Analysis{
		PH:            classify(t.PH, phBands, phOver),
		OrganicMatter: classify(t.OrganicMatter, organicMatterBands, organicMatterOver),
		Nutrients: Nutrients{
			Nitrogen:   classify(t.Nitrogen, nitrogenBands, nitrogenOver),
			Phosphorus: classify(t.Phosphorus, phosphorusBands, phosphorusOver),
			Potassium:  classify(t.Potassium, potassiumBands, potassiumOver),
		},
		OverallHealth: scoreHealth(t),
	}
}

// scoreHealth sums tiered contributions: pH up to 25, organic matter up to 30,
// N/P/K 15 each. A parameter landing in its bottom tier contributes 5 and logs
// a primary issue.
func scoreHealth(t entities.SoilTest) OverallHealth {
	score := 0
	issues := []string{}

	switch {
	case t.PH >= 6.0 && t.PH <= 7.0:
		score += 25
	case t.PH >= 5.5 && t.PH <= 7.5:
		score += 20
	case t.PH >= 5.0 && t.PH <= 8.0:
		score += 15
	default:
		score += 5
		if t.PH < 5.5 {
			issues = append(issues, "Soil too acidic")
		} else {
			issues = append(issues, "Soil too alkaline")
		}
	}

	switch {
	case t.OrganicMatter >= 6.0:
		score += 30
	case t.OrganicMatter >= 4.0:
		score += 25
	case t.OrganicMatter >= 2.0:
		score += 15
	default:
		score += 5
		issues = append(issues, "Low organic matter")
	}

	score += nutrientPoints(t.Nitrogen, 20, 60, 15, 80, "Low nitrogen", "Excessive nitrogen", &issues)
	score += nutrientPoints(t.Phosphorus, 15, 50, 10, 70, "Low phosphorus", "Excessive phosphorus", &issues)
	score += nutrientPoints(t.Potassium, 150, 500, 100, 600, "Low potassium", "Excessive potassium", &issues)

	rating := HealthPoor
	switch {
	case score >= 85:
		rating = HealthExcellent
	case score >= 70:
		rating = HealthGood
	case score >= 50:
		rating = HealthFair
	}

	return OverallHealth{Score: score, Rating: rating, PrimaryIssues: issues}
}

// nutrientPoints awards 15 inside the optimal range, 10 inside the acceptable
// range, else 5 plus an issue string.
func nutrientPoints(v, optLo, optHi, okLo, okHi float64, lowIssue, highIssue string, issues *[]string) int {
	switch {
	case v >= optLo && v <= optHi:
		return 15
	case v >= okLo && v <= okHi:
		return 10
	case v < okLo:
		*issues = append(*issues, lowIssue)
		return 5
	default:
		*issues = append(*issues, highIssue)
		return 5
	}
}
