package entities

import "time"

// InsightsSnapshot is a persisted run of the financial analytics engine,
// written by the nightly snapshot job. The payload is the JSON encoding of
// analytics.FinancialInsights; it is stored opaque so the engine output stays
// decoupled from the schema.
type InsightsSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"user_id"`
	TakenAt     time.Time `gorm:"index" json:"taken_at"`
	PayloadJSON string    `json:"payload_json"`
	CreatedAt   time.Time
}
