package api

import (
	"time"

	"github.com/terraincognita07/pacer/internal/models"
)

// userSummary is the embedded owner representation on session responses.
// Password internals never appear here.
type userSummary struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	Email       *string `json:"email"`
	SubjectID   *string `json:"subject_id"`
	PhoneNumber *string `json:"phone_number"`
}

type sessionResponse struct {
	ID              uint        `json:"id"`
	User            userSummary `json:"user"`
	PlanID          *uint       `json:"plan_id"`
	DurationSeconds int         `json:"duration_seconds"`
	InhaleSeconds   int         `json:"inhale_seconds"`
	HoldSeconds     int         `json:"hold_seconds"`
	ExhaleSeconds   int         `json:"exhale_seconds"`
	Device          string      `json:"device"`
	CreatedAt       time.Time   `json:"created_at"`
}

func buildUserSummary(user *models.User) userSummary {
	return userSummary{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		SubjectID:   user.SubjectID,
		PhoneNumber: user.PhoneNumber,
	}
}

func buildSessionResponse(session models.BreathingSession, owner *models.User) sessionResponse {
	return sessionResponse{
		ID:              session.ID,
		User:            buildUserSummary(owner),
		PlanID:          session.PlanID,
		DurationSeconds: session.DurationSeconds,
		InhaleSeconds:   session.InhaleSeconds,
		HoldSeconds:     session.HoldSeconds,
		ExhaleSeconds:   session.ExhaleSeconds,
		Device:          session.Device,
		CreatedAt:       session.CreatedAt,
	}
}

func buildSessionResponses(sessions []models.BreathingSession, owner *models.User) []sessionResponse {
	responses := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, buildSessionResponse(session, owner))
	}
	return responses
}
