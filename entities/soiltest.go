package entities

import "time"

// SoilTest is a single lab result. The analytics engine treats one test as an
// atomic snapshot and never merges two of them.
type SoilTest struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index" json:"user_id"`
	CropID     string    `json:"crop_id,omitempty"`
	FieldName  string    `json:"field_name,omitempty"`
	SampleDate time.Time `gorm:"index" json:"sample_date"`
	LabName    string    `json:"lab_name,omitempty"`

	PH                     float64 `json:"ph"`             // 0-14
	OrganicMatter          float64 `json:"organic_matter"` // %
	Nitrogen               float64 `json:"nitrogen"`       // ppm
	Phosphorus             float64 `json:"phosphorus"`     // ppm
	Potassium              float64 `json:"potassium"`      // ppm
	Calcium                float64 `json:"calcium"`        // ppm
	Magnesium              float64 `json:"magnesium"`      // ppm
	Sulfur                 float64 `json:"sulfur"`         // ppm
	CationExchangeCapacity float64 `json:"cation_exchange_capacity"`
	SoilTexture            string  `json:"soil_texture"` // sand|loam|clay or free lab label

	Cost  *float64 `json:"cost,omitempty"`
	Notes string   `json:"notes,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
