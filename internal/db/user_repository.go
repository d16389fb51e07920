package db

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/pacer/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindBySubjectID(subjectID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("subject_id = ?", subjectID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindOrCreateBySubjectID provisions a local user for a never-before-seen
// subject id. The insert goes through ON CONFLICT DO NOTHING on the unique
// subject_id index and is followed by a re-read, so two concurrent
// first-sight requests converge on the same row instead of racing a
// check-then-insert.
func (repo *UserRepository) FindOrCreateBySubjectID(candidate *models.User) (models.User, bool, error) {
	if candidate.SubjectID == nil || *candidate.SubjectID == "" {
		return models.User{}, false, fmt.Errorf("find or create user: subject id is required")
	}

	result := repo.insertIgnoringExistingSubject(candidate)
	if result.Error != nil && candidate.Email != nil && isEmailTakenError(result.Error) {
		// The email claim already belongs to a different account. Keep the
		// new subject and provision it without the email rather than failing
		// the request.
		candidate.Email = nil
		result = repo.insertIgnoringExistingSubject(candidate)
	}
	if result.Error != nil {
		return models.User{}, false, result.Error
	}

	created := result.RowsAffected > 0

	user, err := repo.FindBySubjectID(*candidate.SubjectID)
	if err != nil {
		return models.User{}, false, err
	}
	return user, created, nil
}

func (repo *UserRepository) insertIgnoringExistingSubject(candidate *models.User) *gorm.DB {
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}},
			DoNothing: true,
		}).
		Create(candidate)
}

func isEmailTakenError(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Delete(userID uint) error {
	return repo.database.Delete(&models.User{}, userID).Error
}
