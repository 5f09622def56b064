package main

import (
	"log"

	"github.com/mohamedayman28/app-like-jumia/configs"
)

// Prepares the catalog store: connect, migrate the schema, seed the
// enumerated lookup rows. Serving (HTTP, admin) lives in the consuming
// application, not here.
func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	log.Println("catalog store ready:", cfg.DBDriver, cfg.DBSource)
}
