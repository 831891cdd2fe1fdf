package database

import (
	"fmt"
	"log"
	"time"

	"github.com/mehran282/off-board-v1/models"
	"gorm.io/gorm"
)

// SeedData seeds sample catalog data into empty tables. Production rows
// come from the scraper; this exists for local development and demos.
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Retailer{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Retailers
		if err := seedRetailers(tx); err != nil {
			return fmt.Errorf("failed to seed retailers: %w", err)
		}

		// 2. Products
		if err := seedProducts(tx); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		// 3. Flyers
		if err := seedFlyers(tx); err != nil {
			return fmt.Errorf("failed to seed flyers: %w", err)
		}

		// 4. Stores
		if err := seedStores(tx); err != nil {
			return fmt.Errorf("failed to seed stores: %w", err)
		}

		// 5. Offers
		if err := seedOffers(tx); err != nil {
			return fmt.Errorf("failed to seed offers: %w", err)
		}

		log.Println("Seed process completed")
		return nil
	})
}

func seedRetailers(tx *gorm.DB) error {
	retailers := []models.Retailer{
		{ID: "ret-aldi", Name: "ALDI SÜD", Category: "Supermarket", LogoURL: strPtr("https://cdn.example.com/logos/aldi.png")},
		{ID: "ret-edeka", Name: "EDEKA", Category: "Supermarket", LogoURL: strPtr("https://cdn.example.com/logos/edeka.png")},
		{ID: "ret-lidl", Name: "Lidl", Category: "Supermarket", LogoURL: strPtr("https://cdn.example.com/logos/lidl.png")},
		{ID: "ret-mediamarkt", Name: "MediaMarkt", Category: "Electronics", LogoURL: strPtr("https://cdn.example.com/logos/mediamarkt.png")},
		{ID: "ret-rossmann", Name: "Rossmann", Category: "Drugstore"},
	}
	if err := tx.Create(&retailers).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d retailers", len(retailers))
	return nil
}

func seedProducts(tx *gorm.DB) error {
	products := []models.Product{
		{ID: "prd-001", Name: "Bio Vollmilch 1L", Brand: strPtr("Gut & Günstig"), Category: strPtr("Dairy")},
		{ID: "prd-002", Name: "Espresso Bohnen 500g", Brand: strPtr("Lavazza"), Category: strPtr("Coffee")},
		{ID: "prd-003", Name: "Waschmittel Pulver 3kg", Brand: strPtr("Persil"), Category: strPtr("Household")},
		{ID: "prd-004", Name: "4K Fernseher 55 Zoll", Brand: strPtr("Samsung"), Category: strPtr("Electronics")},
		{ID: "prd-005", Name: "Bananen 1kg", Category: strPtr("Produce")},
		{ID: "prd-006", Name: "Duschgel 250ml", Brand: strPtr("Nivea"), Category: strPtr("Personal Care")},
	}
	if err := tx.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d products", len(products))
	return nil
}

func seedFlyers(tx *gorm.DB) error {
	monday := time.Now().Truncate(24*time.Hour).AddDate(0, 0, -3)
	flyers := []models.Flyer{
		{ID: "fly-aldi-kw1", RetailerID: "ret-aldi", Title: "ALDI SÜD Prospekt", Pages: 32,
			ValidFrom: monday, ValidUntil: monday.AddDate(0, 0, 6),
			URL: "https://example.com/flyers/aldi-kw1"},
		{ID: "fly-edeka-kw1", RetailerID: "ret-edeka", Title: "EDEKA Angebote der Woche", Pages: 24,
			ValidFrom: monday, ValidUntil: monday.AddDate(0, 0, 6),
			URL: "https://example.com/flyers/edeka-kw1"},
		{ID: "fly-lidl-kw1", RetailerID: "ret-lidl", Title: "Lidl Wochenprospekt", Pages: 40,
			ValidFrom: monday, ValidUntil: monday.AddDate(0, 0, 6),
			URL: "https://example.com/flyers/lidl-kw1", PdfURL: strPtr("https://example.com/flyers/lidl-kw1.pdf")},
		{ID: "fly-mm-kw1", RetailerID: "ret-mediamarkt", Title: "MediaMarkt Technik-Knaller", Pages: 16,
			ValidFrom: monday.AddDate(0, 0, -7), ValidUntil: monday.AddDate(0, 0, 13),
			URL: "https://example.com/flyers/mm-kw1"},
	}
	if err := tx.Create(&flyers).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d flyers", len(flyers))
	return nil
}

func seedStores(tx *gorm.DB) error {
	stores := []models.Store{
		{ID: "sto-001", RetailerID: "ret-aldi", Address: "Hauptstraße 12", City: "Berlin", PostalCode: "10115", Latitude: floatPtr(52.5321), Longitude: floatPtr(13.3849)},
		{ID: "sto-002", RetailerID: "ret-aldi", Address: "Marktplatz 3", City: "München", PostalCode: "80331"},
		{ID: "sto-003", RetailerID: "ret-edeka", Address: "Bahnhofstraße 8", City: "Hamburg", PostalCode: "20095", Phone: strPtr("+49 40 123456")},
		{ID: "sto-004", RetailerID: "ret-lidl", Address: "Ringstraße 45", City: "Berlin", PostalCode: "10179"},
		{ID: "sto-005", RetailerID: "ret-mediamarkt", Address: "Zentrumsgalerie 1", City: "Köln", PostalCode: "50667"},
	}
	if err := tx.Create(&stores).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d stores", len(stores))
	return nil
}

func seedOffers(tx *gorm.DB) error {
	validUntil := time.Now().AddDate(0, 0, 4)
	offers := []models.Offer{
		{ID: "off-001", RetailerID: "ret-aldi", FlyerID: strPtr("fly-aldi-kw1"), ProductID: strPtr("prd-001"),
			ProductName: "Bio Vollmilch 1L", Brand: strPtr("Gut & Günstig"), Category: strPtr("Dairy"),
			CurrentPrice: 0.99, OldPrice: floatPtr(1.29), DiscountPercentage: floatPtr(23.3),
			URL: "https://example.com/offers/off-001", ValidUntil: &validUntil},
		{ID: "off-002", RetailerID: "ret-aldi", FlyerID: strPtr("fly-aldi-kw1"),
			ProductName: "Bananen 1kg", Category: strPtr("Produce"),
			CurrentPrice: 1.11, URL: "https://example.com/offers/off-002", ValidUntil: &validUntil},
		{ID: "off-003", RetailerID: "ret-aldi", FlyerID: strPtr("fly-aldi-kw1"),
			ProductName: "Espresso Bohnen 500g", Brand: strPtr("Lavazza"), Category: strPtr("Coffee"),
			CurrentPrice: 9.99, OldPrice: floatPtr(14.99), DiscountPercentage: floatPtr(33.4),
			URL: "https://example.com/offers/off-003", ValidUntil: &validUntil},
		{ID: "off-004", RetailerID: "ret-edeka", FlyerID: strPtr("fly-edeka-kw1"), ProductID: strPtr("prd-003"),
			ProductName: "Waschmittel Pulver 3kg", Brand: strPtr("Persil"), Category: strPtr("Household"),
			CurrentPrice: 15.99, OldPrice: floatPtr(22.99), DiscountPercentage: floatPtr(30.4),
			URL: "https://example.com/offers/off-004", ValidUntil: &validUntil},
		{ID: "off-005", RetailerID: "ret-edeka", FlyerID: strPtr("fly-edeka-kw1"),
			ProductName: "Rinderhackfleisch 500g", Category: strPtr("Meat"),
			CurrentPrice: 3.49, OldPrice: floatPtr(4.99), DiscountPercentage: floatPtr(30.1),
			URL: "https://example.com/offers/off-005", ValidUntil: &validUntil},
		{ID: "off-006", RetailerID: "ret-lidl", FlyerID: strPtr("fly-lidl-kw1"),
			ProductName: "Duschgel 250ml", Brand: strPtr("Nivea"), Category: strPtr("Personal Care"),
			CurrentPrice: 1.95, OldPrice: floatPtr(2.45), DiscountPercentage: floatPtr(20.4),
			URL: "https://example.com/offers/off-006", ValidUntil: &validUntil},
		{ID: "off-007", RetailerID: "ret-lidl", FlyerID: strPtr("fly-lidl-kw1"),
			ProductName: "Bio Vollmilch 1L", Category: strPtr("Dairy"),
			CurrentPrice: 1.05, URL: "https://example.com/offers/off-007", ValidUntil: &validUntil},
		{ID: "off-008", RetailerID: "ret-mediamarkt", FlyerID: strPtr("fly-mm-kw1"), ProductID: strPtr("prd-004"),
			ProductName: "4K Fernseher 55 Zoll", Brand: strPtr("Samsung"), Category: strPtr("Electronics"),
			CurrentPrice: 549.00, OldPrice: floatPtr(799.00), DiscountPercentage: floatPtr(31.3),
			URL: "https://example.com/offers/off-008", ValidUntil: &validUntil},
		{ID: "off-009", RetailerID: "ret-mediamarkt", FlyerID: strPtr("fly-mm-kw1"),
			ProductName: "Bluetooth Kopfhörer", Brand: strPtr("Sony"), Category: strPtr("Electronics"),
			CurrentPrice: 79.00, OldPrice: floatPtr(119.00), DiscountPercentage: floatPtr(33.6),
			URL: "https://example.com/offers/off-009", ValidUntil: &validUntil},
		{ID: "off-010", RetailerID: "ret-rossmann",
			ProductName: "Zahncreme 75ml", Brand: strPtr("Elmex"), Category: strPtr("Personal Care"),
			CurrentPrice: 2.99, OldPrice: floatPtr(3.95), DiscountPercentage: floatPtr(24.3),
			URL: "https://example.com/offers/off-010"},
	}
	if err := tx.Create(&offers).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d offers", len(offers))
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
