package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/engine"
	"github.com/mehran282/off-board-v1/models"
)

// retailerCounts carries the per-retailer child row counts.
type retailerCounts struct {
	Flyers int64 `json:"flyers"`
	Offers int64 `json:"offers"`
	Stores int64 `json:"stores"`
}

// retailerItem is a retailer row decorated with its child counts.
type retailerItem struct {
	models.Retailer
	Counts retailerCounts `json:"counts"`
}

// RetailerList handles GET /api/retailers
func (h *Handler) RetailerList(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	f := engine.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	ctx := c.UserContext()
	res, err := h.Engine.List(ctx, engine.EntityRetailer, f.Predicate(), engine.SortNameAsc, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	ids := make([]string, 0, len(res.Items))
	for _, e := range res.Items {
		ids = append(ids, e.EntityID())
	}

	flyerCounts, err := h.childCounts(ctx, engine.EntityFlyer, ids)
	if err != nil {
		return respondError(c, err)
	}
	offerCounts, err := h.childCounts(ctx, engine.EntityOffer, ids)
	if err != nil {
		return respondError(c, err)
	}
	storeCounts, err := h.childCounts(ctx, engine.EntityStore, ids)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]retailerItem, 0, len(res.Items))
	for _, e := range res.Items {
		r, ok := e.(models.Retailer)
		if !ok {
			continue
		}
		items = append(items, retailerItem{
			Retailer: r,
			Counts: retailerCounts{
				Flyers: flyerCounts[r.ID],
				Offers: offerCounts[r.ID],
				Stores: storeCounts[r.ID],
			},
		})
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": newPagination(page, limit, res.Total),
	})
}

// childCounts returns per-retailer row counts of one child entity for a
// page of retailer ids, in a single grouped query.
func (h *Handler) childCounts(ctx context.Context, entity engine.EntityType, retailerIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(retailerIDs))
	if len(retailerIDs) == 0 {
		return out, nil
	}
	p := engine.MatchAll().And(engine.Condition{Field: engine.FieldRetailerID, Op: engine.OpIn, Value: retailerIDs})
	facets, err := h.Engine.CountBy(ctx, entity, p, engine.FieldRetailerID)
	if err != nil {
		return nil, err
	}
	for _, fc := range facets {
		out[fc.Value] = fc.Count
	}
	return out, nil
}

// RetailerDetail handles GET /api/retailers/:id
func (h *Handler) RetailerDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx := c.UserContext()

	e, found, err := h.Engine.Get(ctx, engine.EntityRetailer, id)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Retailer not found"})
	}
	r := e.(models.Retailer)

	byRetailer := engine.Filter{RetailerID: r.ID}.Predicate()

	flyers, err := h.Engine.List(ctx, engine.EntityFlyer, byRetailer, engine.SortValidityDesc, 1, 6)
	if err != nil {
		return respondError(c, err)
	}
	offers, err := h.Engine.List(ctx, engine.EntityOffer, byRetailer, engine.SortDiscountDesc, 1, 6)
	if err != nil {
		return respondError(c, err)
	}
	stores, err := h.Engine.List(ctx, engine.EntityStore, byRetailer, engine.SortNameAsc, 1, 10)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"retailer": r,
		"flyers":   flyers.Items,
		"offers":   offers.Items,
		"stores":   stores.Items,
		"counts": retailerCounts{
			Flyers: flyers.Total,
			Offers: offers.Total,
			Stores: stores.Total,
		},
	})
}

// RetailerStores handles GET /api/retailers/:id/stores
func (h *Handler) RetailerStores(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	id := c.Params("id")

	p := engine.Filter{RetailerID: id}.Predicate()
	if city := c.Query("city"); city != "" {
		p = p.And(engine.Condition{Field: engine.FieldCity, Op: engine.OpEq, Value: city})
	}

	res, err := h.Engine.List(c.UserContext(), engine.EntityStore, p, engine.SortNameAsc, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":      res.Items,
		"pagination": newPagination(page, limit, res.Total),
	})
}
