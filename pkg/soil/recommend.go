package soil

import "farmlens/entities"

type Amendment struct {
	Type    string  `json:"type"`
	Rate    float64 `json:"rate"`
	Unit    string  `json:"unit"`
	Timing  string  `json:"timing"`
	Purpose string  `json:"purpose"`
}

type Practice struct {
	Practice    string `json:"practice"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

type CropSuitability struct {
	CropType    string `json:"crop_type"`
	Suitability string `json:"suitability"` // Excellent|Good|Fair|Poor
	Notes       string `json:"notes"`
}

type Recommendation struct {
	Amendments      []Amendment       `json:"amendments"`
	Practices       []Practice        `json:"practices"`
	CropSuitability []CropSuitability `json:"crop_suitability"`
}

// Recommend derives amendments, management practices and crop-suitability
// verdicts from an analyzed soil test. Amendments only appear when the
// corresponding rating calls for one; rates and timings are fixed guidance.
func Recommend(t entities.SoilTest, a Analysis) Recommendation {
	rec := Recommendation{
		Amendments:      []Amendment{},
		Practices:       []Practice{},
		CropSuitability: []CropSuitability{},
	}

	if a.PH.Rating == RatingVeryLow || a.PH.Rating == RatingLow {
		rate := 1000.0
		if t.PH < 5.5 {
			rate = 2000
		}
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Agricultural Lime",
			Rate:    rate,
			Unit:    "lbs/acre",
			Timing:  "Fall application, 3-6 months before planting",
			Purpose: "Raise soil pH and improve nutrient availability",
		})
	}
	if a.PH.Rating == RatingVeryHigh {
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Sulfur",
			Rate:    300,
			Unit:    "lbs/acre",
			Timing:  "Fall application",
			Purpose: "Lower soil pH to improve nutrient availability",
		})
	}

	if a.OrganicMatter.Rating == RatingVeryLow || a.OrganicMatter.Rating == RatingLow {
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Compost",
			Rate:    2,
			Unit:    "tons/acre",
			Timing:  "Spring or fall application",
			Purpose: "Increase organic matter and improve soil structure",
		})
	}

	if a.Nutrients.Nitrogen.Rating == RatingLow {
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Nitrogen Fertilizer (Urea)",
			Rate:    100,
			Unit:    "lbs/acre",
			Timing:  "Split application: at planting and side-dress",
			Purpose: "Meet crop nitrogen requirements",
		})
	}
	if a.Nutrients.Phosphorus.Rating == RatingLow {
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Phosphate Fertilizer",
			Rate:    80,
			Unit:    "lbs P2O5/acre",
			Timing:  "Pre-plant application",
			Purpose: "Support root development and energy transfer",
		})
	}
	if a.Nutrients.Potassium.Rating == RatingLow {
		rec.Amendments = append(rec.Amendments, Amendment{
			Type:    "Potash Fertilizer",
			Rate:    100,
			Unit:    "lbs K2O/acre",
			Timing:  "Pre-plant or split application",
			Purpose: "Improve disease resistance and crop quality",
		})
	}

	if a.OrganicMatter.Value < 3.0 {
		rec.Practices = append(rec.Practices, Practice{
			Practice:    "Cover Cropping",
			Description: "Plant cover crops in fallow periods to add organic matter and prevent erosion",
			Timeline:    "Fall seeding, spring termination",
		})
	}
	if a.OverallHealth.Score < 70 {
		rec.Practices = append(rec.Practices, Practice{
			Practice:    "Reduced Tillage",
			Description: "Minimize soil disturbance to preserve soil structure and organic matter",
			Timeline:    "Ongoing management practice",
		})
	}
	rec.Practices = append(rec.Practices, Practice{
		Practice:    "Regular Soil Testing",
		Description: "Test soil every 2-3 years to monitor changes and adjust management",
		Timeline:    "Bi-annual or tri-annual",
	})

	rec.CropSuitability = assessCropSuitability(t)
	return rec
}

// assessCropSuitability checks a fixed set of reference crops against simple
// pH, organic-matter and nitrogen ranges.
func assessCropSuitability(t entities.SoilTest) []CropSuitability {
	out := make([]CropSuitability, 0, 3)

	corn := CropSuitability{CropType: "Corn", Suitability: "Good"}
	if t.PH < 6.0 || t.PH > 7.0 {
		corn.Suitability = "Fair"
		corn.Notes = "pH not optimal for corn production"
	}
	if t.Nitrogen < 25 {
		corn.Suitability = "Fair"
		if corn.Notes != "" {
			corn.Notes += "; Low nitrogen"
		} else {
			corn.Notes = "Low nitrogen"
		}
	}
	if corn.Notes == "" {
		corn.Notes = "Good conditions for corn production"
	}
	out = append(out, corn)

	soy := CropSuitability{CropType: "Soybeans", Suitability: "Good"}
	if t.PH < 6.0 || t.PH > 7.0 {
		soy.Suitability = "Fair"
		soy.Notes = "pH not optimal for soybeans"
	}
	if soy.Notes == "" {
		soy.Notes = "Good conditions for soybean production"
	}
	out = append(out, soy)

	tomato := CropSuitability{CropType: "Tomatoes", Suitability: "Good"}
	if t.PH < 6.0 || t.PH > 7.0 {
		tomato.Suitability = "Fair"
		tomato.Notes = "pH should be 6.0-7.0 for tomatoes"
	}
	if t.OrganicMatter < 3.0 {
		tomato.Suitability = "Fair"
		if tomato.Notes != "" {
			tomato.Notes += "; Low organic matter"
		} else {
			tomato.Notes = "Low organic matter"
		}
	}
	if tomato.Notes == "" {
		tomato.Notes = "Good conditions for tomato production"
	}
	out = append(out, tomato)

	return out
}
