package models

import "time"

// BreathingSession records one completed exercise. DurationSeconds is
// wall-clock time and is independent of the inhale/hold/exhale pacing
// fields. Rows are immutable in the owner/created_at dimensions: both are
// assigned by the server at persist time.
type BreathingSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"-"`
	PlanID          *uint     `gorm:"index" json:"plan_id"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	InhaleSeconds   int       `gorm:"not null" json:"inhale_seconds"`
	HoldSeconds     int       `gorm:"not null;default:0" json:"hold_seconds"`
	ExhaleSeconds   int       `gorm:"not null" json:"exhale_seconds"`
	Device          string    `gorm:"not null;default:''" json:"device"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}
