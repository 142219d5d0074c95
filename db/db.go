package db

import (
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wealthtracker.com/types"
)

var DB *gorm.DB

// Init connects to the configured database and migrates the schema. SQLite is
// the default; set DB_TYPE=POSTGRES_DSN and DATABASE_URL for postgres.
func Init() {
	var err error

	if os.Getenv("DB_TYPE") == "POSTGRES_DSN" {
		DB, err = gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = filepath.Join("instance", "portfolio.db")
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			log.Fatalf("Failed to create database directory: %v", mkErr)
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&types.Asset{},
		&types.Dividend{},
		&types.Property{},
		&types.ApiCache{},
		&types.NetWorthSnapshot{},
	)
}
