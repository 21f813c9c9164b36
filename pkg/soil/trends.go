package soil

import (
	"time"

	"farmlens/entities"
)

// TrendPoint is one soil test reduced to its date, raw parameters and
// composite score, for charting health over time.
type TrendPoint struct {
	Date          time.Time `json:"date"`
	PH            float64   `json:"ph"`
	OrganicMatter float64   `json:"organic_matter"`
	Nitrogen      float64   `json:"nitrogen"`
	Phosphorus    float64   `json:"phosphorus"`
	Potassium     float64   `json:"potassium"`
	FieldName     string    `json:"field_name"`
	HealthScore   int       `json:"health_score"`
}

// Trend maps each test to a trend point, preserving the caller's order. Every
// test is scored independently; nothing is merged or smoothed. Tests without
// a field name get "Unknown Field" so chart series still group.
func Trend(tests []entities.SoilTest) []TrendPoint {
	out := make([]TrendPoint, 0, len(tests))
	for _, t := range tests {
		field := t.FieldName
		if field == "" {
			field = "Unknown Field"
		}
		out = append(out, TrendPoint{
			Date:          t.SampleDate,
			PH:            t.PH,
			OrganicMatter: t.OrganicMatter,
			Nitrogen:      t.Nitrogen,
			Phosphorus:    t.Phosphorus,
			Potassium:     t.Potassium,
			FieldName:     field,
			HealthScore:   scoreHealth(t).Score,
		})
	}
	return out
}
