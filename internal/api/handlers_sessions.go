package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pacer/internal/services"
)

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	sessions, err := handler.sessionService.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(buildSessionResponses(sessions, user))
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "session not found")
	}

	session, err := handler.sessionService.GetOwned(user.ID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(buildSessionResponse(session, user))
}

// CreateSession records a completed session for the caller. The owner and
// created_at come from the server; any user or timestamp in the payload is
// ignored by the input shape.
func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	var input services.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, kindValidationFailed, "invalid session payload")
	}

	session, err := handler.sessionService.Record(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildSessionResponse(session, user))
}

func (handler *Handler) ReplaceSession(c *fiber.Ctx) error {
	return handler.updateSession(c, false)
}

func (handler *Handler) UpdateSession(c *fiber.Ctx) error {
	return handler.updateSession(c, true)
}

func (handler *Handler) updateSession(c *fiber.Ctx, partial bool) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "session not found")
	}

	var input services.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, kindValidationFailed, "invalid session payload")
	}

	session, err := handler.sessionService.UpdateOwned(user.ID, sessionID, input, partial)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(buildSessionResponse(session, user))
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, kindAuthRejected, "unauthorized")
	}

	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, kindReferenceNotFound, "session not found")
	}

	if err := handler.sessionService.DeleteOwned(user.ID, sessionID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
