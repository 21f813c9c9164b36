package entities

import "time"

// ActivityKind is the closed set of logged farm event types. The same set is
// used for cost grouping in the analytics engine.
type ActivityKind string

const (
	KindIrrigation  ActivityKind = "IRRIGATION"
	KindFertilizer  ActivityKind = "FERTILIZER"
	KindPestControl ActivityKind = "PEST_CONTROL"
	KindPlanting    ActivityKind = "PLANTING"
	KindHarvest     ActivityKind = "HARVEST"
	KindOther       ActivityKind = "OTHER"
)

// Kinds lists every valid activity kind.
func Kinds() []ActivityKind {
	return []ActivityKind{KindIrrigation, KindFertilizer, KindPestControl, KindPlanting, KindHarvest, KindOther}
}

type Activity struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	UserID      string       `gorm:"index" json:"user_id"`
	Kind        ActivityKind `json:"kind"`
	Cost        *float64     `json:"cost,omitempty"`
	OccurredAt  time.Time    `gorm:"index" json:"occurred_at"`
	CropID      string       `gorm:"index" json:"crop_id,omitempty"`
	CropName    string       `json:"crop_name,omitempty"`
	YieldAmount *float64     `json:"yield_amount,omitempty"` // kg, only meaningful for HARVEST
	Notes       string       `json:"notes,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CostValue returns the cost with absent treated as 0.
func (a Activity) CostValue() float64 {
	if a.Cost == nil {
		return 0
	}
	return *a.Cost
}

// YieldValue returns the yield amount with absent treated as 0.
func (a Activity) YieldValue() float64 {
	if a.YieldAmount == nil {
		return 0
	}
	return *a.YieldAmount
}
