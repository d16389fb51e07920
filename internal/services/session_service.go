package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/pacer/internal/models"
)

type SessionRepository interface {
	ListByUser(userID uint) ([]models.BreathingSession, error)
	FindByID(sessionID uint) (models.BreathingSession, bool, error)
	CreateWithProgress(session *models.BreathingSession) error
	Save(session *models.BreathingSession) error
	Delete(sessionID uint) error
}

type PlanExistenceChecker interface {
	ExistsByID(planID uint) (bool, error)
}

// SessionService is the central write path: it validates and records
// completed breathing sessions and, through the repository transaction,
// keeps the owner's maintained progress in step with every recorded
// session.
type SessionService struct {
	sessions SessionRepository
	plans    PlanExistenceChecker
	now      func() time.Time
}

func NewSessionService(sessions SessionRepository, plans PlanExistenceChecker) *SessionService {
	return &SessionService{
		sessions: sessions,
		plans:    plans,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type SessionInput struct {
	DurationSeconds *int   `json:"duration_seconds"`
	InhaleSeconds   *int   `json:"inhale_seconds"`
	HoldSeconds     *int   `json:"hold_seconds"`
	ExhaleSeconds   *int   `json:"exhale_seconds"`
	PlanID          *uint  `json:"plan_id"`
	Device          string `json:"device"`
}

// Record validates the input and persists a session owned by userID. The
// owner and the creation timestamp are assigned here, never taken from the
// caller. On success the owner's progress row has already been updated in
// the same transaction.
func (service *SessionService) Record(userID uint, input SessionInput) (models.BreathingSession, error) {
	duration, err := requireNonNegative("duration_seconds", input.DurationSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}
	inhale, err := requireNonNegative("inhale_seconds", input.InhaleSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}
	exhale, err := requireNonNegative("exhale_seconds", input.ExhaleSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}

	hold := 0
	if input.HoldSeconds != nil {
		if *input.HoldSeconds < 0 {
			return models.BreathingSession{}, fmt.Errorf("%w: hold_seconds must be non-negative", ErrValidation)
		}
		hold = *input.HoldSeconds
	}

	if input.PlanID != nil {
		exists, err := service.plans.ExistsByID(*input.PlanID)
		if err != nil {
			return models.BreathingSession{}, err
		}
		if !exists {
			return models.BreathingSession{}, ErrPlanNotFound
		}
	}

	session := models.BreathingSession{
		UserID:          userID,
		PlanID:          input.PlanID,
		DurationSeconds: duration,
		InhaleSeconds:   inhale,
		HoldSeconds:     hold,
		ExhaleSeconds:   exhale,
		Device:          strings.TrimSpace(input.Device),
		CreatedAt:       service.now(),
	}
	if err := service.sessions.CreateWithProgress(&session); err != nil {
		return models.BreathingSession{}, err
	}
	return session, nil
}

func (service *SessionService) ListForUser(userID uint) ([]models.BreathingSession, error) {
	return service.sessions.ListByUser(userID)
}

// GetOwned loads a session and checks ownership. A session that exists but
// belongs to someone else yields ErrNotOwner so callers can decide how much
// to reveal.
func (service *SessionService) GetOwned(userID uint, sessionID uint) (models.BreathingSession, error) {
	session, found, err := service.sessions.FindByID(sessionID)
	if err != nil {
		return models.BreathingSession{}, err
	}
	if !found {
		return models.BreathingSession{}, ErrSessionNotFound
	}
	if session.UserID != userID {
		return models.BreathingSession{}, ErrNotOwner
	}
	return session, nil
}

// UpdateOwned changes the duration/pacing/device/plan fields of an owned
// session. Owner and created_at stay fixed, and the maintained progress row
// is deliberately not re-adjusted; the summary endpoint is the consistent
// view once sessions have been edited.
func (service *SessionService) UpdateOwned(userID uint, sessionID uint, input SessionInput, partial bool) (models.BreathingSession, error) {
	session, err := service.GetOwned(userID, sessionID)
	if err != nil {
		return models.BreathingSession{}, err
	}

	if !partial {
		updated, err := service.validateFullUpdate(session, input)
		if err != nil {
			return models.BreathingSession{}, err
		}
		session = updated
	} else {
		if err := service.applyPartialUpdate(&session, input); err != nil {
			return models.BreathingSession{}, err
		}
	}

	if err := service.sessions.Save(&session); err != nil {
		return models.BreathingSession{}, err
	}
	return session, nil
}

func (service *SessionService) DeleteOwned(userID uint, sessionID uint) error {
	if _, err := service.GetOwned(userID, sessionID); err != nil {
		return err
	}
	return service.sessions.Delete(sessionID)
}

func (service *SessionService) validateFullUpdate(session models.BreathingSession, input SessionInput) (models.BreathingSession, error) {
	duration, err := requireNonNegative("duration_seconds", input.DurationSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}
	inhale, err := requireNonNegative("inhale_seconds", input.InhaleSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}
	exhale, err := requireNonNegative("exhale_seconds", input.ExhaleSeconds)
	if err != nil {
		return models.BreathingSession{}, err
	}

	session.DurationSeconds = duration
	session.InhaleSeconds = inhale
	session.ExhaleSeconds = exhale
	session.HoldSeconds = 0
	if input.HoldSeconds != nil {
		if *input.HoldSeconds < 0 {
			return models.BreathingSession{}, fmt.Errorf("%w: hold_seconds must be non-negative", ErrValidation)
		}
		session.HoldSeconds = *input.HoldSeconds
	}

	if err := service.applyPlanReference(&session, input.PlanID, true); err != nil {
		return models.BreathingSession{}, err
	}
	session.Device = strings.TrimSpace(input.Device)
	return session, nil
}

func (service *SessionService) applyPartialUpdate(session *models.BreathingSession, input SessionInput) error {
	setters := []struct {
		field string
		value *int
		dest  *int
	}{
		{"duration_seconds", input.DurationSeconds, &session.DurationSeconds},
		{"inhale_seconds", input.InhaleSeconds, &session.InhaleSeconds},
		{"hold_seconds", input.HoldSeconds, &session.HoldSeconds},
		{"exhale_seconds", input.ExhaleSeconds, &session.ExhaleSeconds},
	}
	for _, setter := range setters {
		if setter.value == nil {
			continue
		}
		if *setter.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative", ErrValidation, setter.field)
		}
		*setter.dest = *setter.value
	}

	if err := service.applyPlanReference(session, input.PlanID, false); err != nil {
		return err
	}
	if device := strings.TrimSpace(input.Device); device != "" {
		session.Device = device
	}
	return nil
}

// applyPlanReference sets or, on a full replace without plan_id, clears the
// plan reference after confirming the plan exists.
func (service *SessionService) applyPlanReference(session *models.BreathingSession, planID *uint, clearWhenAbsent bool) error {
	if planID == nil {
		if clearWhenAbsent {
			session.PlanID = nil
		}
		return nil
	}

	exists, err := service.plans.ExistsByID(*planID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPlanNotFound
	}
	session.PlanID = planID
	return nil
}

func requireNonNegative(field string, value *int) (int, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if *value < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative", ErrValidation, field)
	}
	return *value, nil
}
