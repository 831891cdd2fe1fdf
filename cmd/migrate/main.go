package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mehran282/off-board-v1/config"
	"github.com/mehran282/off-board-v1/database"
	"gorm.io/gorm"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all catalog tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	db, err := database.Connect(&cfg.Database, nil)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Check connection
	if err := database.CheckConnection(db); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("⚠️  Dropping all catalog tables...")
		if err := dropAllTables(db); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to run migration: %v", err)
	}

	fmt.Println("✅ Migration completed successfully!")
}

func dropAllTables(db *gorm.DB) error {
	// Drop in reverse dependency order
	tables := []string{"offers", "stores", "flyers", "products", "retailers"}
	for _, table := range tables {
		fmt.Printf("  Dropping table: %s\n", table)
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("  Warning: Failed to drop %s: %v", table, err)
		}
	}
	return nil
}

func showHelp() {
	fmt.Println(`
Database Migration Tool for the Off-Board Catalog

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all catalog tables before migration (WARNING: Data loss!)
  -help     Show this help message

Examples:
  # Run migration (create/update tables)
  go run cmd/migrate/main.go

  # Drop all tables and recreate
  go run cmd/migrate/main.go -drop

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_HOST
  - DB_PORT
  - DB_USER
  - DB_PASSWORD
  - DB_NAME`)
}
