package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const (
	defaultHighlightGroups  = 2
	maxHighlightGroups      = 10
	defaultHighlightMembers = 8
	maxHighlightMembers     = 20
)

// Highlights handles GET /api/highlights
//
// Returns the top k retailers by filtered offer count, each with its top
// m offers by discount. Used by the homepage highlight sections.
func (h *Handler) Highlights(c *fiber.Ctx) error {
	k, err := queryInt(c, "k", defaultHighlightGroups)
	if err != nil {
		return respondError(c, err)
	}
	m, err := queryInt(c, "m", defaultHighlightMembers)
	if err != nil {
		return respondError(c, err)
	}
	if k > maxHighlightGroups {
		k = maxHighlightGroups
	}
	if m > maxHighlightMembers {
		m = maxHighlightMembers
	}
	f, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}

	groups, err := h.Engine.TopRetailerOffers(c.UserContext(), f, k, m)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"groups": groups})
}
