package engine

import (
	"context"
	"errors"

	"github.com/mehran282/off-board-v1/models"
)

func ctx() context.Context { return context.Background() }

func fp(v float64) *float64 { return &v }

func sp(v string) *string { return &v }

func testOffer(id, retailerID string, discount *float64) models.Offer {
	return models.Offer{
		ID:                 id,
		RetailerID:         retailerID,
		ProductName:        "Product " + id,
		CurrentPrice:       1.99,
		DiscountPercentage: discount,
		URL:                "https://example.com/offers/" + id,
	}
}

func testRetailer(id, name, category string) models.Retailer {
	return models.Retailer{ID: id, Name: name, Category: category}
}

func idsOf(items []Entity) []string {
	ids := make([]string, len(items))
	for i, e := range items {
		ids[i] = e.EntityID()
	}
	return ids
}

// recordingStore counts calls per operation, for asserting query bounds.
type recordingStore struct {
	inner  Store
	counts int
	finds  int
	groups int
}

func record(inner Store) *recordingStore {
	return &recordingStore{inner: inner}
}

func (s *recordingStore) calls() int {
	return s.counts + s.finds + s.groups
}

func (s *recordingStore) Count(ctx context.Context, entity EntityType, p Predicate) (int64, error) {
	s.counts++
	return s.inner.Count(ctx, entity, p)
}

func (s *recordingStore) Find(ctx context.Context, entity EntityType, p Predicate, key SortKey, skip, take int) ([]Entity, error) {
	s.finds++
	return s.inner.Find(ctx, entity, p, key, skip, take)
}

func (s *recordingStore) GroupCount(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error) {
	s.groups++
	return s.inner.GroupCount(ctx, entity, p, dimension)
}

// failingStore simulates an unreachable backing store.
type failingStore struct{}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func (failingStore) Count(context.Context, EntityType, Predicate) (int64, error) {
	return 0, errConnRefused
}

func (failingStore) Find(context.Context, EntityType, Predicate, SortKey, int, int) ([]Entity, error) {
	return nil, errConnRefused
}

func (failingStore) GroupCount(context.Context, EntityType, Predicate, string) ([]Facet, error) {
	return nil, errConnRefused
}

// writingStore inserts a row between the count and the find of the same
// request, imitating the ingestion pipeline writing concurrently.
type writingStore struct {
	inner   *MemStore
	pending []models.Offer
}

func (s *writingStore) Count(ctx context.Context, entity EntityType, p Predicate) (int64, error) {
	total, err := s.inner.Count(ctx, entity, p)
	for _, o := range s.pending {
		s.inner.Add(EntityOffer, o)
	}
	s.pending = nil
	return total, err
}

func (s *writingStore) Find(ctx context.Context, entity EntityType, p Predicate, key SortKey, skip, take int) ([]Entity, error) {
	return s.inner.Find(ctx, entity, p, key, skip, take)
}

func (s *writingStore) GroupCount(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error) {
	return s.inner.GroupCount(ctx, entity, p, dimension)
}

// capturingStore remembers the skip/take of the last Find.
type capturingStore struct {
	inner    Store
	lastSkip int
	lastTake int
}

func (s *capturingStore) Count(ctx context.Context, entity EntityType, p Predicate) (int64, error) {
	return s.inner.Count(ctx, entity, p)
}

func (s *capturingStore) Find(ctx context.Context, entity EntityType, p Predicate, key SortKey, skip, take int) ([]Entity, error) {
	s.lastSkip, s.lastTake = skip, take
	return s.inner.Find(ctx, entity, p, key, skip, take)
}

func (s *capturingStore) GroupCount(ctx context.Context, entity EntityType, p Predicate, dimension string) ([]Facet, error) {
	return s.inner.GroupCount(ctx, entity, p, dimension)
}

// catalogFixture builds a small store with four retailers and a spread of
// offers used across the query tests.
func catalogFixture() *MemStore {
	ms := NewMemStore()
	ms.Add(EntityRetailer,
		testRetailer("r1", "ALDI", "Supermarket"),
		testRetailer("r2", "EDEKA", "Supermarket"),
		testRetailer("r3", "MediaMarkt", "Electronics"),
		testRetailer("r4", "Rossmann", "Drugstore"),
	)

	mk := func(id, retailer string, discount *float64, category, brand *string) models.Offer {
		o := testOffer(id, retailer, discount)
		o.Category = category
		o.Brand = brand
		return o
	}

	ms.Add(EntityOffer,
		mk("o01", "r1", fp(50), sp("Food"), sp("Gut & Günstig")),
		mk("o02", "r1", fp(35), sp("Food"), nil),
		mk("o03", "r1", fp(20), sp("Drinks"), sp("Coca-Cola")),
		mk("o04", "r1", nil, nil, nil),
		mk("o05", "r2", fp(42), sp("Food"), sp("Persil")),
		mk("o06", "r2", fp(42), sp("Household"), sp("Persil")),
		mk("o07", "r2", fp(10), sp("Drinks"), nil),
		mk("o08", "r3", fp(33), sp("Electronics"), sp("Samsung")),
		mk("o09", "r3", fp(60), sp("Electronics"), sp("Sony")),
		mk("o10", "r3", nil, sp("Electronics"), nil),
	)
	return ms
}
