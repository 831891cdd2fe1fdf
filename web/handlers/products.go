package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/engine"
)

// ProductList handles GET /api/products
func (h *Handler) ProductList(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	f := engine.Filter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
	}

	res, err := h.Engine.List(c.UserContext(), engine.EntityProduct, f.Predicate(), engine.SortNameAsc, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":      res.Items,
		"pagination": newPagination(page, limit, res.Total),
	})
}
