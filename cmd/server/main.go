package main

import (
	"context"
	"database/sql"
	"delivery-route-planner/internal/adapters/cache"
	"delivery-route-planner/internal/adapters/geocode"
	"delivery-route-planner/internal/adapters/mapfile"
	"delivery-route-planner/internal/adapters/repositories"
	"delivery-route-planner/internal/api"
	"delivery-route-planner/internal/config"
	"delivery-route-planner/internal/platform/db"
	"delivery-route-planner/internal/ports"
	"delivery-route-planner/internal/services"
	"delivery-route-planner/internal/spatial"
	"delivery-route-planner/internal/streetmap"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It loads the road network, wires optional Redis and ORS adapters behind
// ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var database *sql.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer database.Close()
	}

	network, err := loadNetwork(ctx, cfg, database)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("road network loaded source=%s nodes=%d segments=%d",
		cfg.MapSource, network.NodeCount(), network.SegmentCount())

	var router ports.LegRouter = services.NewRouter(network)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping failed addr=%s: %v", cfg.RedisAddr, err)
		}
		router = services.NewCachedRouter(router, cache.NewRedisLegCache(client, cfg.LegCachePrefix, cfg.LegCacheTTL))
		log.Printf("leg cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.LegCacheTTL)
	}

	geocoder, err := newGeocoder(cfg, database)
	if err != nil {
		log.Fatal(err)
	}

	handler := api.NewRouter(api.Deps{
		Router:   router,
		Geocoder: geocoder,
		Locator:  spatial.NewIndex(network.Coords()),
	})

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadNetwork(ctx context.Context, cfg config.Config, database *sql.DB) (*streetmap.Network, error) {
	var loader ports.SegmentLoader
	switch cfg.MapSource {
	case config.MapSourcePostgres:
		loader = repositories.NewPostgresSegmentRepository(database)
	default:
		loader = mapfile.NewLoader(cfg.MapPath)
	}

	segments, err := loader.LoadSegments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return streetmap.Build(segments), nil
}

// newGeocoder returns nil when no ORS key is configured. Lookups are cached in
// Postgres when a database is available.
func newGeocoder(cfg config.Config, database *sql.DB) (ports.Geocoder, error) {
	if cfg.ORSAPIKey == "" {
		log.Println("ORS_API_KEY not set; address locations are disabled")
		return nil, nil
	}

	var addrCache geocode.AddressCache
	if database != nil {
		addrCache = cache.NewSQLGeocodeCache(database)
	}

	g, err := geocode.NewORSGeocoder(cfg.ORSAPIKey, cfg.ORSBaseURL, addrCache)
	if err != nil {
		return nil, fmt.Errorf("new geocoder: %w", err)
	}
	return g, nil
}
