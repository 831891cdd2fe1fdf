package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Retailer{},
		&Product{},

		// 2. Tables depending on Retailer
		&Flyer{},
		&Store{},

		// 3. Offers reference Retailer, Flyer and Product
		&Offer{},
	}
}
