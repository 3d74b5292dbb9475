package repositories

import (
	"context"
	"os"
	"testing"

	"delivery-route-planner/internal/domain"
	"delivery-route-planner/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a disposable database: the table is truncated.
func TestPostgresImportAndLoad(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, InitSchema(ctx, database))
	require.NoError(t, InitSchema(ctx, database), "schema creation is idempotent")

	a := domain.MustGeoCoord("34.0625000", "-118.4450000")
	b := domain.MustGeoCoord("34.0650000", "-118.4450000")
	c := domain.MustGeoCoord("34.0650000", "-118.4480000")
	forward := []domain.StreetSegment{
		{Start: a, End: b, Name: "Westwood Blvd"},
		{Start: b, End: c, Name: "Weyburn Ave"},
	}
	require.NoError(t, ImportSegments(ctx, database, forward))

	got, err := NewPostgresSegmentRepository(database).LoadSegments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.StreetSegment{
		forward[0], forward[0].Reverse(),
		forward[1], forward[1].Reverse(),
	}, got)
	assert.Equal(t, "34.0625000", got[0].Start.LatText(), "coordinate text survives the round trip")
}
