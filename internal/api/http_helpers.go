package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pacer/internal/services"
)

const (
	kindAuthMalformed     = "authentication_malformed"
	kindAuthRejected      = "authentication_rejected"
	kindAuthIncomplete    = "authentication_incomplete"
	kindAuthUnavailable   = "authentication_unavailable"
	kindValidationFailed  = "validation_failed"
	kindReferenceNotFound = "reference_not_found"
	kindStorageFailure    = "storage_failure"
)

func apiError(c *fiber.Ctx, status int, kind string, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": kind, "message": message})
}

// serviceError maps service sentinels to wire responses. A session owned by
// another user gets the same 404 as a missing one so session ids cannot be
// probed across accounts.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, kindValidationFailed, err.Error())
	case errors.Is(err, services.ErrPlanNotFound):
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "plan not found")
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrNotOwner):
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "session not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, kindStorageFailure, "storage failure")
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
