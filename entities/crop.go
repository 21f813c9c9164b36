package entities

import "time"

type Crop struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	UserID      string  `gorm:"index" json:"user_id"`
	Name        string  `json:"name"`
	AreaPlanted float64 `json:"area_planted"` // m2

	CreatedAt time.Time
	UpdatedAt time.Time
}
