package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/engine"
)

// CategoryFacets handles GET /api/categories
//
// Returns facet counts over offers for one dimension (category by
// default, brand via ?dim=brand). Any other active filter narrows the
// counts, but a filter on the faceted dimension itself is ignored so the
// UI can always show the counts of the non-selected values.
func (h *Handler) CategoryFacets(c *fiber.Ctx) error {
	dim, err := engine.ParseDimension(c.Query("dim", string(engine.DimensionCategory)))
	if err != nil {
		return respondError(c, err)
	}
	f, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	facets, err := h.Engine.Facets(c.UserContext(), engine.EntityOffer, f, dim)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"facets": facets})
}
