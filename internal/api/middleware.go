package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pacer/internal/models"
	"github.com/terraincognita07/pacer/internal/services"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired resolves the bearer credential to a local user and stores it
// in the request context. Every route except the health check runs behind
// it.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.identityService.ResolveBearer(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthMalformed):
			return apiError(c, fiber.StatusUnauthorized, kindAuthMalformed, err.Error())
		case errors.Is(err, services.ErrAuthRejected):
			return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, err.Error())
		case errors.Is(err, services.ErrAuthIncomplete):
			return apiError(c, fiber.StatusUnauthorized, kindAuthIncomplete, err.Error())
		case errors.Is(err, services.ErrAuthUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, kindAuthUnavailable, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, kindStorageFailure, "failed to resolve user")
		}
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
