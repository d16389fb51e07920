package db

import (
	"errors"

	"github.com/terraincognita07/pacer/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) FindByUser(userID uint) (models.UserProgress, bool, error) {
	var progress models.UserProgress
	err := repo.database.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProgress{}, false, nil
	}
	if err != nil {
		return models.UserProgress{}, false, err
	}
	return progress, true, nil
}

type recomputedTotals struct {
	TotalSessions int `gorm:"column:total_sessions"`
	TotalMinutes  int `gorm:"column:total_minutes"`
}

// RecomputeForUser derives the totals straight from the session set,
// flooring each session to whole minutes the same way the maintained row
// accumulates them. It never reads or writes user_progress.
func (repo *ProgressRepository) RecomputeForUser(userID uint) (models.UserProgress, error) {
	var totals recomputedTotals
	if err := repo.database.
		Raw(
			`SELECT COUNT(*) AS total_sessions, COALESCE(SUM(duration_seconds / 60), 0) AS total_minutes
			 FROM breathing_sessions WHERE user_id = ?`,
			userID,
		).
		Scan(&totals).Error; err != nil {
		return models.UserProgress{}, err
	}

	recomputed := models.UserProgress{
		UserID:        userID,
		TotalSessions: totals.TotalSessions,
		TotalMinutes:  totals.TotalMinutes,
	}

	if totals.TotalSessions > 0 {
		var latest models.BreathingSession
		if err := repo.database.
			Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			First(&latest).Error; err != nil {
			return models.UserProgress{}, err
		}
		createdAt := latest.CreatedAt
		recomputed.LastSession = &createdAt
	}

	return recomputed, nil
}
