package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RetailerOffers pairs a selected retailer with its top offers.
type RetailerOffers struct {
	Retailer Entity   `json:"retailer"`
	Offers   []Entity `json:"items"`
}

// TopRetailerOffers selects the top k retailers by filtered offer count,
// then the top m offers per selected retailer by discount DESC (NULL
// discounts last), id ASC tie-break.
//
// Two phases keep the query count bounded by k rather than by the total
// retailer population:
//  1. one grouped count over the full candidate set ranks the retailers
//     (count DESC, retailer id ASC, zero-measure groups dropped);
//  2. one bounded top-m fetch per selected retailer, issued concurrently.
//
// Fewer than k retailers with a positive count simply yields a shorter
// slice; a retailer with fewer than m offers yields a shorter member list.
func (e *Engine) TopRetailerOffers(ctx context.Context, f Filter, k, m int) ([]RetailerOffers, error) {
	if k <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: k=%d m=%d", ErrInvalidPaging, k, m)
	}

	p := f.Predicate()

	// Phase 1: rank retailers by offer count without materializing offers.
	// GroupCount already orders count DESC, value ASC and omits empty groups.
	groups, err := e.store.GroupCount(ctx, EntityOffer, p, FieldRetailerID)
	if err != nil {
		return nil, storeErr(err)
	}
	selected := make([]Facet, 0, k)
	for _, g := range groups {
		if g.Count <= 0 {
			continue
		}
		selected = append(selected, g)
		if len(selected) == k {
			break
		}
	}
	if len(selected) == 0 {
		return []RetailerOffers{}, nil
	}

	ids := make([]string, len(selected))
	for i, g := range selected {
		ids[i] = g.Value
	}
	retailerRows, err := e.store.Find(ctx, EntityRetailer,
		MatchAll().And(Condition{Field: FieldID, Op: OpIn, Value: ids}),
		SortNameAsc, 0, len(ids))
	if err != nil {
		return nil, storeErr(err)
	}
	retailersByID := make(map[string]Entity, len(retailerRows))
	for _, r := range retailerRows {
		retailersByID[r.EntityID()] = r
	}

	// Phase 2: top-m offers per selected retailer, concurrently. The
	// fan-out is bounded by k, never by the retailer population.
	out := make([]RetailerOffers, len(selected))
	grp, gctx := errgroup.WithContext(ctx)
	for i, g := range selected {
		i, g := i, g
		retailer, ok := retailersByID[g.Value]
		if !ok {
			// Group id with no retailer row: the ingestion side removed
			// the retailer between the two reads. Skip it.
			continue
		}
		out[i] = RetailerOffers{Retailer: retailer}
		grp.Go(func() error {
			memberPred := p.And(Condition{Field: FieldRetailerID, Op: OpEq, Value: g.Value})
			offers, err := e.store.Find(gctx, EntityOffer, memberPred, SortDiscountDesc, 0, m)
			if err != nil {
				return err
			}
			out[i].Offers = offers
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, storeErr(err)
	}

	// Drop any slot skipped above, preserving phase-1 order.
	result := make([]RetailerOffers, 0, len(out))
	for _, ro := range out {
		if ro.Retailer != nil {
			result = append(result, ro)
		}
	}
	return result, nil
}
