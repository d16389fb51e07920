package models

import "time"

// UserProgress is derived state, exactly one row per user. It is written
// only by the session recorder inside the same transaction as the session
// insert, never directly by clients.
type UserProgress struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	UserID        uint       `gorm:"uniqueIndex;not null" json:"-"`
	TotalSessions int        `gorm:"not null;default:0" json:"total_sessions"`
	TotalMinutes  int        `gorm:"not null;default:0" json:"total_minutes"`
	LastSession   *time.Time `json:"last_session"`
}

// TableName keeps the model on the migrated singular table instead of the
// default pluralization.
func (UserProgress) TableName() string {
	return "user_progress"
}
