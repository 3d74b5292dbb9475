package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/platform/obs"
)

// Postgres-backed implementation of the SegmentLoader port.
type PostgresSegmentRepository struct{ DB *sql.DB }

func NewPostgresSegmentRepository(db *sql.DB) *PostgresSegmentRepository {
	return &PostgresSegmentRepository{DB: db}
}

// Return every stored street in both directions, in import order.
func (s *PostgresSegmentRepository) LoadSegments(ctx context.Context) (_ []domain.StreetSegment, err error) {
	defer obs.Time(ctx, "segments.LoadSegments")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres segment repository: DB is nil")
	}

	query := `
	SELECT
		street_name,
		start_lat,
		start_lon,
		end_lat,
		end_lon
	FROM street_segments
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load segments: query street_segments table: %w", err)
	}
	defer rows.Close()

	segments := make([]domain.StreetSegment, 0, 1024)
	for rows.Next() {
		var name, startLat, startLon, endLat, endLon string
		if err := rows.Scan(&name, &startLat, &startLon, &endLat, &endLon); err != nil {
			return nil, fmt.Errorf("load segments: scan row: %w", err)
		}

		seg, err := scanSegment(name, startLat, startLon, endLat, endLon)
		if err != nil {
			return nil, fmt.Errorf("load segments: %w", err)
		}
		segments = append(segments, seg, seg.Reverse())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load segments: row iteration: %w", err)
	}

	return segments, nil
}

func scanSegment(name, startLat, startLon, endLat, endLon string) (domain.StreetSegment, error) {
	start, err := domain.NewGeoCoord(startLat, startLon)
	if err != nil {
		return domain.StreetSegment{}, fmt.Errorf("street %q start: %w", name, err)
	}
	end, err := domain.NewGeoCoord(endLat, endLon)
	if err != nil {
		return domain.StreetSegment{}, fmt.Errorf("street %q end: %w", name, err)
	}
	return domain.StreetSegment{Start: start, End: end, Name: name}, nil
}
