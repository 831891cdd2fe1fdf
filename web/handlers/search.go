package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SearchOffers handles GET /api/search
//
// Substring search over offer name, brand and category, ranked by
// discount. An empty query returns an empty envelope without touching
// the store.
func (h *Handler) SearchOffers(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	q := c.Query("q")

	res, err := h.Engine.Search(c.UserContext(), q, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.decorateOffers(c, res.Items)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": newPagination(page, limit, res.Total),
	})
}
