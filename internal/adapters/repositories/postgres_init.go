package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"delivery-route-planner/internal/domain"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Coordinates are stored as text: node identity is the textual representation.
	createSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS street_segments (
		id BIGSERIAL PRIMARY KEY,
		street_name TEXT NOT NULL,
		start_lat TEXT NOT NULL,
		start_lon TEXT NOT NULL,
		end_lat TEXT NOT NULL,
		end_lon TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_street_segments_start
	ON street_segments(start_lat, start_lon);
	`

	statements := []string{
		createSegmentsQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored network with segments.
//
// Each undirected street is stored once. Pass one direction per street, for
// example only the forward segments from mapfile.Parse.
func ImportSegments(ctx context.Context, db *sql.DB, segments []domain.StreetSegment) error {
	if db == nil {
		return errors.New("import segments: DB is nil")
	}

	for i, s := range segments {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("import segments: segment at index %d: street name cannot be empty", i)
		}
		if s.Start.IsZero() || s.End.IsZero() {
			return fmt.Errorf("import segments: segment at index %d: missing coordinate", i)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import segments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE street_segments RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("import segments: truncate: %w", err)
	}

	query := `
	INSERT INTO street_segments (
		street_name,
		start_lat,
		start_lon,
		end_lat,
		end_lon
	)
	VALUES ($1, $2, $3, $4, $5);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("import segments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range segments {
		if _, err := stmt.ExecContext(ctx,
			s.Name,
			s.Start.LatText(), s.Start.LonText(),
			s.End.LatText(), s.End.LonText(),
		); err != nil {
			return fmt.Errorf("import segments: insert segment #%d %q: %w", i+1, s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import segments: commit tx: %w", err)
	}

	return nil
}

// ForwardSegments keeps every other segment of a mapfile.Parse result, which
// lists each street segment followed by its reverse.
func ForwardSegments(segments []domain.StreetSegment) []domain.StreetSegment {
	out := make([]domain.StreetSegment, 0, (len(segments)+1)/2)
	for i := 0; i < len(segments); i += 2 {
		out = append(out, segments[i])
	}
	return out
}
