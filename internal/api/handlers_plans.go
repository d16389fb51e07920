package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pacer/internal/services"
)

func (handler *Handler) ListPlans(c *fiber.Ctx) error {
	plans, err := handler.planService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plans)
}

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "plan not found")
	}

	plan, err := handler.planService.Get(planID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) CreatePlan(c *fiber.Ctx) error {
	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, kindValidationFailed, "invalid plan payload")
	}

	plan, err := handler.planService.Create(input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) ReplacePlan(c *fiber.Ctx) error {
	return handler.updatePlan(c, false)
}

func (handler *Handler) UpdatePlan(c *fiber.Ctx) error {
	return handler.updatePlan(c, true)
}

func (handler *Handler) updatePlan(c *fiber.Ctx, partial bool) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "plan not found")
	}

	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, kindValidationFailed, "invalid plan payload")
	}

	plan, err := handler.planService.Update(planID, input, partial)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) DeletePlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "plan not found")
	}

	if err := handler.planService.Delete(planID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
