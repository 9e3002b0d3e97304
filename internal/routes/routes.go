package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
	"github.com/reachjvc/daygame-coach-api/internal/handlers"
	"github.com/reachjvc/daygame-coach-api/internal/middleware"
)

func Setup(app *fiber.App, cat *catalog.Catalog) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	// Catalog reads need no auth; the catalog is static editorial data.
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/templates", handlers.GetTemplates(cat))
	catalogGroup.Get("/templates/:id/children", handlers.GetTemplateChildren(cat))
	catalogGroup.Get("/templates/:id/mindmap", handlers.GetTemplateMindMap(cat))
	catalogGroup.Get("/templates/:id/tree-inserts", handlers.GetTemplateTreeInserts(cat))
	catalogGroup.Get("/tiers", handlers.GetCatalogTiers(cat))
	catalogGroup.Get("/life-areas", handlers.GetLifeAreas(cat))

	api.Post("/journey/recommendations", handlers.GetRecommendations(cat))

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateSettings)
	protected.Get("/me/subscription", handlers.GetSubscription)
	protected.Put("/me/subscription", handlers.UpdateSubscription)

	goals := protected.Group("/goals")
	goals.Post("/batch", handlers.CreateGoalBatch)
	goals.Get("/", handlers.GetGoals)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Post("/:id/toggle", handlers.ToggleGoalCompletion)
}
