// Package config reads service settings from the environment, after loading a
// .env file when one is present.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	MapSourceFile     = "file"
	MapSourcePostgres = "postgres"
)

type Config struct {
	Port string

	// MapSource selects where the road network is loaded from.
	MapSource   string
	MapPath     string
	DatabaseURL string

	// Leg cache; disabled when RedisAddr is empty.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	LegCacheTTL    time.Duration
	LegCachePrefix string

	// Geocoding; disabled when ORSAPIKey is empty.
	ORSAPIKey  string
	ORSBaseURL string
}

// Load reads .env (if any) and the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           Get("PORT", "8080"),
		MapSource:      strings.ToLower(Get("MAP_SOURCE", MapSourceFile)),
		MapPath:        Get("MAP_PATH", "data/mapdata.txt"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		LegCachePrefix: Get("LEG_CACHE_PREFIX", "planner:"),
		ORSAPIKey:      strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:     Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
	}

	var err error
	if cfg.RedisDB, err = GetInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LegCacheTTL, err = GetDuration("LEG_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}

	switch cfg.MapSource {
	case MapSourceFile:
		if strings.TrimSpace(cfg.MapPath) == "" {
			return Config{}, fmt.Errorf("config: MAP_PATH is required when MAP_SOURCE=%s", MapSourceFile)
		}
	case MapSourcePostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required when MAP_SOURCE=%s", MapSourcePostgres)
		}
	default:
		return Config{}, fmt.Errorf("config: MAP_SOURCE must be %q or %q, got %q", MapSourceFile, MapSourcePostgres, cfg.MapSource)
	}

	return cfg, nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid integer %q", key, v)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid duration %q", key, v)
	}
	return d, nil
}
