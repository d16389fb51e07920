package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"not null" json:"username"`
	Email        *string   `gorm:"uniqueIndex" json:"email"`
	SubjectID    *string   `gorm:"uniqueIndex" json:"subject_id"`
	PhoneNumber  *string   `json:"phone_number"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
}
