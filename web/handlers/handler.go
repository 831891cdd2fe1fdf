package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/database"
	"github.com/mehran282/off-board-v1/engine"
	"github.com/mehran282/off-board-v1/models"
)

// Handler bundles the catalog engine and debug facilities for the JSON
// endpoints. It is constructed once in main and shared by all routes.
type Handler struct {
	Engine  *engine.Engine
	Queries *database.QueryLogger
}

// New creates the handler set.
func New(eng *engine.Engine, queries *database.QueryLogger) *Handler {
	return &Handler{Engine: eng, Queries: queries}
}

// pagination is the envelope block returned with every list response.
type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func newPagination(page, limit int, total int64) pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// retailerSummary is the compact retailer block embedded in offer and
// flyer list items.
type retailerSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

func summarize(r models.Retailer) retailerSummary {
	return retailerSummary{ID: r.ID, Name: r.Name, LogoURL: r.LogoURL}
}

// parsePaging reads page/limit with the API defaults. A present but
// non-numeric value is a caller mistake, not a silent default. The limit
// is clamped here so the envelope's limit and totalPages always describe
// the window the engine actually serves.
func parsePaging(c *fiber.Ctx) (page, limit int, err error) {
	page, err = queryInt(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(c, "limit", engine.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if limit > engine.MaxPageSize {
		limit = engine.MaxPageSize
	}
	return page, limit, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", engine.ErrInvalidPaging, key, v)
	}
	return n, nil
}

// parseFilter reads the optional list filters. Absent and empty values
// impose no constraint.
func parseFilter(c *fiber.Ctx) (engine.Filter, error) {
	f := engine.Filter{
		RetailerID: c.Query("retailerId"),
		Category:   c.Query("category"),
		Brand:      c.Query("brand"),
		Search:     c.Query("search"),
	}
	if v := strings.TrimSpace(c.Query("minDiscount")); v != "" {
		md, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "minDiscount must be numeric")
		}
		f.MinDiscount = &md
	}
	return f, nil
}

// respondError maps the engine error taxonomy onto HTTP statuses.
// Validation errors are the caller's mistake (400); an unavailable store
// is surfaced as 503 with no retry and no stale fallback.
func respondError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	switch {
	case errors.Is(err, engine.ErrInvalidPaging),
		errors.Is(err, engine.ErrUnsupportedEntityType),
		errors.Is(err, engine.ErrUnsupportedSortKey),
		errors.Is(err, engine.ErrUnsupportedDimension):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// retailersByID fetches the retailer rows for a set of ids in one query.
func (h *Handler) retailersByID(ctx context.Context, ids []string) (map[string]models.Retailer, error) {
	out := make(map[string]models.Retailer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	p := engine.MatchAll().And(engine.Condition{Field: engine.FieldID, Op: engine.OpIn, Value: ids})
	res, err := h.Engine.List(ctx, engine.EntityRetailer, p, engine.SortNameAsc, 1, len(ids))
	if err != nil {
		return nil, err
	}
	for _, e := range res.Items {
		if r, ok := e.(models.Retailer); ok {
			out[r.ID] = r
		}
	}
	return out, nil
}

// dedupe keeps the first occurrence of each non-empty id.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
