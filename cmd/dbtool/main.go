package main

import (
	"context"
	"database/sql"
	"delivery-route-planner/internal/adapters/mapfile"
	"delivery-route-planner/internal/adapters/repositories"
	"delivery-route-planner/internal/config"
	"delivery-route-planner/internal/platform/db"
	"fmt"
	"log"
	"strings"
)

// dbtool creates the Postgres schema and imports the map file named by MAP_PATH.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := initAndImport(ctx, database, cfg.MapPath); err != nil {
		log.Fatal(err)
	}
}

func initAndImport(ctx context.Context, database *sql.DB, mapPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, database); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	segments, err := mapfile.NewLoader(mapPath).LoadSegments(ctx)
	if err != nil {
		return fmt.Errorf("read map file: %w", err)
	}

	log.Printf("Importing street segments path=%s...", mapPath)
	forward := repositories.ForwardSegments(segments)
	if err := repositories.ImportSegments(ctx, database, forward); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	log.Printf("Import complete segments=%d.", len(forward))

	return nil
}
