package database

import (
	"fmt"
	"log"

	"github.com/mehran282/off-board-v1/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all catalog models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	// Create tables in dependency order
	for _, model := range models.AllModels() {
		stmt := &gorm.Statement{DB: db}
		tableName := "?"
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", tableName, err)
		}
		log.Printf("  ✓ Migrated table: %s", tableName)
	}

	// Foreign keys the scraper schema relies on. Created manually so the
	// models stay free of association fields.
	if err := createForeignKeys(db); err != nil {
		log.Printf("Warning: Some foreign keys could not be created: %v", err)
	}

	return nil
}

func createForeignKeys(db *gorm.DB) error {
	constraints := []struct {
		name string
		sql  string
	}{
		{"fk_flyers_retailer", `ALTER TABLE flyers ADD CONSTRAINT fk_flyers_retailer
			FOREIGN KEY (retailer_id) REFERENCES retailers(id) ON DELETE CASCADE`},
		{"fk_stores_retailer", `ALTER TABLE stores ADD CONSTRAINT fk_stores_retailer
			FOREIGN KEY (retailer_id) REFERENCES retailers(id) ON DELETE CASCADE`},
		{"fk_offers_retailer", `ALTER TABLE offers ADD CONSTRAINT fk_offers_retailer
			FOREIGN KEY (retailer_id) REFERENCES retailers(id) ON DELETE CASCADE`},
		{"fk_offers_flyer", `ALTER TABLE offers ADD CONSTRAINT fk_offers_flyer
			FOREIGN KEY (flyer_id) REFERENCES flyers(id) ON DELETE SET NULL`},
		{"fk_offers_product", `ALTER TABLE offers ADD CONSTRAINT fk_offers_product
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL`},
	}

	for _, c := range constraints {
		var exists bool
		err := db.Raw(`
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = ?
			)
		`, c.name).Scan(&exists).Error
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := db.Exec(c.sql).Error; err != nil {
			log.Printf("  ⚠ Could not create constraint %s: %v", c.name, err)
			continue
		}
		log.Printf("  ✓ Created constraint: %s", c.name)
	}
	return nil
}
