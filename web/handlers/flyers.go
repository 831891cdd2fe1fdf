package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/engine"
	"github.com/mehran282/off-board-v1/models"
)

// flyerItem is a flyer row decorated with its retailer and offer count.
type flyerItem struct {
	models.Flyer
	Retailer   *retailerSummary `json:"retailer,omitempty"`
	OfferCount int64            `json:"offerCount"`
}

// FlyerList handles GET /api/flyers
func (h *Handler) FlyerList(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	f := engine.Filter{RetailerID: c.Query("retailerId")}

	ctx := c.UserContext()
	res, err := h.Engine.List(ctx, engine.EntityFlyer, f.Predicate(), engine.SortValidityDesc, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	retailerIDs := make([]string, 0, len(res.Items))
	flyerIDs := make([]string, 0, len(res.Items))
	for _, e := range res.Items {
		if fl, ok := e.(models.Flyer); ok {
			retailerIDs = append(retailerIDs, fl.RetailerID)
			flyerIDs = append(flyerIDs, fl.ID)
		}
	}

	retailers, err := h.retailersByID(ctx, dedupe(retailerIDs))
	if err != nil {
		return respondError(c, err)
	}

	// Offer counts for the whole page in one grouped query.
	offerCounts := make(map[string]int64, len(flyerIDs))
	if len(flyerIDs) > 0 {
		p := engine.MatchAll().And(engine.Condition{Field: engine.FieldFlyerID, Op: engine.OpIn, Value: flyerIDs})
		facets, err := h.Engine.CountBy(ctx, engine.EntityOffer, p, engine.FieldFlyerID)
		if err != nil {
			return respondError(c, err)
		}
		for _, fc := range facets {
			offerCounts[fc.Value] = fc.Count
		}
	}

	items := make([]flyerItem, 0, len(res.Items))
	for _, e := range res.Items {
		fl, ok := e.(models.Flyer)
		if !ok {
			continue
		}
		item := flyerItem{Flyer: fl, OfferCount: offerCounts[fl.ID]}
		if r, ok := retailers[fl.RetailerID]; ok {
			s := summarize(r)
			item.Retailer = &s
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": newPagination(page, limit, res.Total),
	})
}

// FlyerDetail handles GET /api/flyers/:id
func (h *Handler) FlyerDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx := c.UserContext()

	e, found, err := h.Engine.Get(ctx, engine.EntityFlyer, id)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Flyer not found"})
	}
	fl := e.(models.Flyer)

	retailers, err := h.retailersByID(ctx, []string{fl.RetailerID})
	if err != nil {
		return respondError(c, err)
	}

	// All offers of the flyer, best discounts first.
	p := engine.MatchAll().And(engine.Condition{Field: engine.FieldFlyerID, Op: engine.OpEq, Value: fl.ID})
	offers, err := h.Engine.List(ctx, engine.EntityOffer, p, engine.SortDiscountDesc, 1, engine.MaxPageSize)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"flyer":  fl,
		"offers": offers.Items,
	}
	if r, ok := retailers[fl.RetailerID]; ok {
		resp["retailer"] = r
	}
	return c.JSON(resp)
}
