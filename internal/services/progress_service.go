package services

import "github.com/terraincognita07/pacer/internal/models"

type ProgressReader interface {
	FindByUser(userID uint) (models.UserProgress, bool, error)
	RecomputeForUser(userID uint) (models.UserProgress, error)
}

// ProgressService exposes the two views over a user's totals: the
// maintained row kept current by the session write path, and an on-demand
// recomputation straight from the session set. Neither call mutates
// anything.
type ProgressService struct {
	progress ProgressReader
}

func NewProgressService(progress ProgressReader) *ProgressService {
	return &ProgressService{progress: progress}
}

// Get returns the maintained progress row. A user with no recorded
// sessions has no row yet and gets the implicit zero value.
func (service *ProgressService) Get(userID uint) (models.UserProgress, error) {
	progress, found, err := service.progress.FindByUser(userID)
	if err != nil {
		return models.UserProgress{}, err
	}
	if !found {
		return models.UserProgress{UserID: userID}, nil
	}
	return progress, nil
}

// Summary recomputes totals from the session records only. It stays
// correct even when the maintained row has drifted after session edits or
// deletions.
func (service *ProgressService) Summary(userID uint) (models.UserProgress, error) {
	return service.progress.RecomputeForUser(userID)
}
