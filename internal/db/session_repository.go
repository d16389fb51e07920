package db

import (
	"errors"

	"github.com/terraincognita07/pacer/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) ListByUser(userID uint) ([]models.BreathingSession, error) {
	sessions := make([]models.BreathingSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindByID reports the session and whether any row with that id exists at
// all, so callers can tell a missing session from one owned by someone
// else without leaking the difference to clients.
func (repo *SessionRepository) FindByID(sessionID uint) (models.BreathingSession, bool, error) {
	var session models.BreathingSession
	err := repo.database.First(&session, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BreathingSession{}, false, nil
	}
	if err != nil {
		return models.BreathingSession{}, false, err
	}
	return session, true, nil
}

// CreateWithProgress persists the session and folds it into the owner's
// maintained progress row in one transaction. The progress row is
// materialized with ON CONFLICT DO NOTHING and then incremented with SQL
// column expressions, so two concurrent creates for the same user are
// additive rather than last-writer-wins.
func (repo *SessionRepository) CreateWithProgress(session *models.BreathingSession) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		seed := models.UserProgress{UserID: session.UserID}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoNothing: true,
			}).
			Create(&seed).Error; err != nil {
			return err
		}

		return tx.Model(&models.UserProgress{}).
			Where("user_id = ?", session.UserID).
			UpdateColumns(map[string]any{
				"total_sessions": gorm.Expr("total_sessions + 1"),
				"total_minutes":  gorm.Expr("total_minutes + ?", session.DurationSeconds/60),
				"last_session":   session.CreatedAt,
			}).Error
	})
}

func (repo *SessionRepository) Save(session *models.BreathingSession) error {
	return repo.database.Save(session).Error
}

func (repo *SessionRepository) Delete(sessionID uint) error {
	return repo.database.Delete(&models.BreathingSession{}, sessionID).Error
}

func (repo *SessionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.BreathingSession{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
