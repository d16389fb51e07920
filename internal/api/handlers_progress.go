package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	progress, err := handler.progressService.Get(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(progress)
}

// GetProgressSummary recomputes totals from the caller's session records,
// bypassing the maintained progress row entirely.
func (handler *Handler) GetProgressSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	summary, err := handler.progressService.Summary(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
