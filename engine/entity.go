// Package engine implements the catalog query and facet aggregation engine:
// paginated sorted listings, per-dimension facet counts and two-level
// "top retailers with their best offers" rankings, all driven by a shared
// predicate value over a read-only Store.
package engine

// EntityType identifies one of the catalog entity kinds.
type EntityType string

const (
	EntityRetailer EntityType = "retailer"
	EntityFlyer    EntityType = "flyer"
	EntityOffer    EntityType = "offer"
	EntityProduct  EntityType = "product"
	EntityStore    EntityType = "store"
)

// Entity is implemented by every catalog model. The identifier is opaque,
// stable and unique per entity type; it doubles as the deterministic
// tie-break key for all orderings.
type Entity interface {
	EntityID() string
}

// Logical field names used by predicates and group dimensions. Store
// adapters map them onto their own column names per entity type.
const (
	FieldID                 = "id"
	FieldRetailerID         = "retailerId"
	FieldFlyerID            = "flyerId"
	FieldCategory           = "category"
	FieldBrand              = "brand"
	FieldName               = "name"
	FieldCity               = "city"
	FieldDiscountPercentage = "discountPercentage"
)

// knownEntity reports whether e is one of the supported entity types.
func knownEntity(e EntityType) bool {
	switch e {
	case EntityRetailer, EntityFlyer, EntityOffer, EntityProduct, EntityStore:
		return true
	}
	return false
}
