package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/engine"
	"github.com/mehran282/off-board-v1/models"
)

// flyerSummary is the compact flyer block embedded in offer items.
type flyerSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// offerItem is an offer row decorated with its retailer and flyer.
type offerItem struct {
	models.Offer
	Retailer *retailerSummary `json:"retailer,omitempty"`
	Flyer    *flyerSummary    `json:"flyer,omitempty"`
}

// OfferList handles GET /api/offers
func (h *Handler) OfferList(c *fiber.Ctx) error {
	page, limit, err := parsePaging(c)
	if err != nil {
		return respondError(c, err)
	}
	f, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	sortKey := engine.SortDiscountDesc
	if v := c.Query("sort"); v != "" {
		if sortKey, err = engine.ParseSortKey(v); err != nil {
			return respondError(c, err)
		}
	}

	ctx := c.UserContext()
	res, err := h.Engine.List(ctx, engine.EntityOffer, f.Predicate(), sortKey, page, limit)
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

// decorateOffers attaches retailer and flyer summaries to a page of
// offers with one batched query per related entity, never per row.
func (h *Handler) decorateOffers(c *fiber.Ctx, rows []engine.Entity) ([]offerItem, error) {
	ctx := c.UserContext()

	retailerIDs := make([]string, 0, len(rows))
	flyerIDs := make([]string, 0, len(rows))
	for _, e := range rows {
		o, ok := e.(models.Offer)
		if !ok {
			continue
		}
		retailerIDs = append(retailerIDs, o.RetailerID)
		if o.FlyerID != nil {
			flyerIDs = append(flyerIDs, *o.FlyerID)
		}
	}

	retailers, err := h.retailersByID(ctx, dedupe(retailerIDs))
	if err != nil {
		return nil, err
	}
	flyers, err := h.flyersByID(ctx, dedupe(flyerIDs))
	if err != nil {
		return nil, err
	}

	items := make([]offerItem, 0, len(rows))
	for _, e := range rows {
		o, ok := e.(models.Offer)
		if !ok {
			continue
		}
		item := offerItem{Offer: o}
		if r, ok := retailers[o.RetailerID]; ok {
			s := summarize(r)
			item.Retailer = &s
		}
		if o.FlyerID != nil {
			if fl, ok := flyers[*o.FlyerID]; ok {
				item.Flyer = &flyerSummary{ID: fl.ID, Title: fl.Title, URL: fl.URL}
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (h *Handler) flyersByID(ctx context.Context, ids []string) (map[string]models.Flyer, error) {
	out := make(map[string]models.Flyer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	p := engine.MatchAll().And(engine.Condition{Field: engine.FieldID, Op: engine.OpIn, Value: ids})
	res, err := h.Engine.List(ctx, engine.EntityFlyer, p, engine.SortValidityDesc, 1, len(ids))
	if err != nil {
		return nil, err
	}
	for _, e := range res.Items {
		if fl, ok := e.(models.Flyer); ok {
			out[fl.ID] = fl
		}
	}
	return out, nil
}
