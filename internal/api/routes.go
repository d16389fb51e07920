package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired)

	plans := api.Group("/plans")
	plans.Get("", handler.ListPlans)
	plans.Post("", handler.CreatePlan)
	plans.Get("/:id", handler.GetPlan)
	plans.Put("/:id", handler.ReplacePlan)
	plans.Patch("/:id", handler.UpdatePlan)
	plans.Delete("/:id", handler.DeletePlan)

	sessions := api.Group("/sessions")
	sessions.Get("", handler.ListSessions)
	sessions.Post("", handler.CreateSession)
	sessions.Get("/:id", handler.GetSession)
	sessions.Put("/:id", handler.ReplaceSession)
	sessions.Patch("/:id", handler.UpdateSession)
	sessions.Delete("/:id", handler.DeleteSession)

	progress := api.Group("/progress")
	progress.Get("", handler.GetProgress)
	progress.Get("/summary", handler.GetProgressSummary)
}
