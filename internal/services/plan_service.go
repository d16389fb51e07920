package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/pacer/internal/models"
)

type PlanRepository interface {
	List() ([]models.BreathPlan, error)
	FindByID(planID uint) (models.BreathPlan, bool, error)
	ExistsByName(name string) (bool, error)
	Create(plan *models.BreathPlan) error
	Save(plan *models.BreathPlan) error
	Delete(planID uint) error
}

// PlanService manages the shared breathing-plan catalog. Plans have no
// owner; any authenticated user may manage them.
type PlanService struct {
	plans PlanRepository
}

func NewPlanService(plans PlanRepository) *PlanService {
	return &PlanService{plans: plans}
}

type PlanInput struct {
	Name     *string `json:"name"`
	InhaleMS *int    `json:"inhale_ms"`
	HoldMS   *int    `json:"hold_ms"`
	ExhaleMS *int    `json:"exhale_ms"`
	IsPublic *bool   `json:"is_public"`
	Notes    *string `json:"notes"`
}

func (service *PlanService) List() ([]models.BreathPlan, error) {
	return service.plans.List()
}

func (service *PlanService) Get(planID uint) (models.BreathPlan, error) {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return models.BreathPlan{}, err
	}
	if !found {
		return models.BreathPlan{}, ErrPlanNotFound
	}
	return plan, nil
}

func (service *PlanService) Create(input PlanInput) (models.BreathPlan, error) {
	plan := models.BreathPlan{IsPublic: true}
	if err := applyPlanInput(&plan, input, false); err != nil {
		return models.BreathPlan{}, err
	}

	taken, err := service.plans.ExistsByName(plan.Name)
	if err != nil {
		return models.BreathPlan{}, err
	}
	if taken {
		return models.BreathPlan{}, fmt.Errorf("%w: plan name already in use", ErrValidation)
	}

	if err := service.plans.Create(&plan); err != nil {
		return models.BreathPlan{}, err
	}
	return plan, nil
}

// Update applies the input to an existing plan. With partial=false every
// field is required, mirroring a full PUT replace; with partial=true only
// the provided fields change.
func (service *PlanService) Update(planID uint, input PlanInput, partial bool) (models.BreathPlan, error) {
	plan, err := service.Get(planID)
	if err != nil {
		return models.BreathPlan{}, err
	}

	previousName := plan.Name
	if err := applyPlanInput(&plan, input, partial); err != nil {
		return models.BreathPlan{}, err
	}

	if plan.Name != previousName {
		taken, err := service.plans.ExistsByName(plan.Name)
		if err != nil {
			return models.BreathPlan{}, err
		}
		if taken {
			return models.BreathPlan{}, fmt.Errorf("%w: plan name already in use", ErrValidation)
		}
	}

	if err := service.plans.Save(&plan); err != nil {
		return models.BreathPlan{}, err
	}
	return plan, nil
}

func (service *PlanService) Delete(planID uint) error {
	if _, err := service.Get(planID); err != nil {
		return err
	}
	return service.plans.Delete(planID)
}

func applyPlanInput(plan *models.BreathPlan, input PlanInput, partial bool) error {
	if input.Name != nil {
		plan.Name = strings.TrimSpace(*input.Name)
	} else if !partial {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if plan.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	if input.InhaleMS != nil {
		plan.InhaleMS = *input.InhaleMS
	} else if !partial {
		return fmt.Errorf("%w: inhale_ms is required", ErrValidation)
	}
	if input.ExhaleMS != nil {
		plan.ExhaleMS = *input.ExhaleMS
	} else if !partial {
		return fmt.Errorf("%w: exhale_ms is required", ErrValidation)
	}
	if input.HoldMS != nil {
		plan.HoldMS = *input.HoldMS
	}
	if input.IsPublic != nil {
		plan.IsPublic = *input.IsPublic
	}
	if input.Notes != nil {
		plan.Notes = *input.Notes
	}

	if plan.InhaleMS < 0 || plan.HoldMS < 0 || plan.ExhaleMS < 0 {
		return fmt.Errorf("%w: durations must be non-negative", ErrValidation)
	}
	return nil
}
