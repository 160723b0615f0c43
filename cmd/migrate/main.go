package main

import (
	"log"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
)

// Standalone schema runner for operators who prefer the CLI over the setup
// wizard. Requires DATABASE_URL (or a .env with it) to be set.
func main() {
	log.Println("Running schema migration...")

	cfg := config.Load()
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := config.OpenDatabase(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	result, err := database.CreateSchema(db)
	if err != nil {
		log.Fatal("Schema migration failed: ", err)
	}

	for _, table := range result.TablesCreated {
		log.Printf("Table ready: %s", table)
	}
	for _, index := range result.IndexesCreated {
		log.Printf("Index ready: %s", index)
	}
	log.Println("Schema migration completed successfully")
}
