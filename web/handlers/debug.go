package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetSQLLogs handles GET /api/debug/sql
func (h *Handler) GetSQLLogs(c *fiber.Ctx) error {
	if h.Queries == nil {
		return c.JSON(fiber.Map{"queries": []interface{}{}, "total": 0})
	}
	queries := h.Queries.GetQueries()
	return c.JSON(fiber.Map{
		"queries": queries,
		"total":   len(queries),
	})
}

// ClearSQLLogs handles DELETE /api/debug/sql
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	if h.Queries != nil {
		h.Queries.Clear()
	}
	return c.SendStatus(fiber.StatusOK)
}
