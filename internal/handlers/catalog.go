package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
	"github.com/reachjvc/daygame-coach-api/internal/mindmap"
	"github.com/reachjvc/daygame-coach-api/internal/treegen"
)

// Catalog handlers close over the injected catalog instead of reading
// package state, so tests can mount them over a synthetic catalog.

func GetTemplates(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.Templates())
	}
}

func GetTemplateChildren(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Unknown ids are "no children", not 404 — callers rely on the
		// empty-collection convention.
		return c.JSON(cat.Children(c.Params("id")))
	}
}

func GetCatalogTiers(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.Tiers())
	}
}

func GetLifeAreas(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.LifeAreas())
	}
}

// GetTemplateMindMap returns the built mind-map tree for a life goal,
// with default expand/select state and numbering assigned.
func GetTemplateMindMap(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m := mindmap.Build(cat, c.Params("id"))
		if m == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Life goal not found",
			})
		}
		return c.JSON(m)
	}
}

// GetTemplateTreeInserts previews the batch the tree customizer edits
// before submission. An empty batch means nothing to create.
func GetTemplateTreeInserts(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"goals": treegen.Generate(cat, c.Params("id")),
		})
	}
}
