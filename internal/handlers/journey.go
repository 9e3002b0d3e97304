package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
	"github.com/reachjvc/daygame-coach-api/internal/journey"
)

// RecommendationsRequest carries the onboarding answers. Partial
// answers are fine; the engine treats missing fields as "no signal".
type RecommendationsRequest struct {
	Identity  journey.Identity  `json:"identity"`
	Situation journey.Situation `json:"situation"`
	Vision    journey.Vision    `json:"vision"`
}

type recommendationItem struct {
	journey.RankedGoal
	AutoSelected bool `json:"autoSelected"`
}

// GetRecommendations scores the catalog against the answers and
// returns the ranked list plus the canonical top-level goal for the
// stated vision (null when the vision is unset).
func GetRecommendations(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RecommendationsRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		ranked := journey.Recommend(cat, req.Identity, req.Situation, req.Vision)
		items := make([]recommendationItem, len(ranked))
		for i, rg := range ranked {
			items[i] = recommendationItem{
				RankedGoal:   rg,
				AutoSelected: journey.AutoSelected(rg.Template.Level, rg.Relevance),
			}
		}

		return c.JSON(fiber.Map{
			"recommendations": items,
			"topGoal":         journey.TopL1(cat, req.Vision),
		})
	}
}
