package db

import (
	"errors"

	"github.com/terraincognita07/pacer/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) List() ([]models.BreathPlan, error) {
	plans := make([]models.BreathPlan, 0)
	if err := repo.database.Order("name ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) FindByID(planID uint) (models.BreathPlan, bool, error) {
	var plan models.BreathPlan
	err := repo.database.First(&plan, planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BreathPlan{}, false, nil
	}
	if err != nil {
		return models.BreathPlan{}, false, err
	}
	return plan, true, nil
}

func (repo *PlanRepository) ExistsByID(planID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.BreathPlan{}).Where("id = ?", planID).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *PlanRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.BreathPlan{}).Where("name = ?", name).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *PlanRepository) CountPlans() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.BreathPlan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PlanRepository) Create(plan *models.BreathPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *PlanRepository) Save(plan *models.BreathPlan) error {
	return repo.database.Save(plan).Error
}

// Delete removes the plan; referencing sessions keep their rows with
// plan_id cleared via the ON DELETE SET NULL foreign key.
func (repo *PlanRepository) Delete(planID uint) error {
	return repo.database.Delete(&models.BreathPlan{}, planID).Error
}

// SeedDefaultPlans populates the built-in plan catalog on an empty table.
// A non-empty table is left untouched so admin edits survive restarts.
func (repo *PlanRepository) SeedDefaultPlans() error {
	count, err := repo.CountPlans()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, plan := range models.DefaultPlans() {
			if err := tx.Create(&plan).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
