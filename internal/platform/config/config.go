package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	RedisAddr   string

	// Simulated chain transaction time per mutation. The demo waits
	// 2s / 1.5s / 2s; zero disables the wait.
	MintLatency     time.Duration
	ListLatency     time.Duration
	PurchaseLatency time.Duration

	SeedDemoCatalog      bool
	DemoOwnedFallback    bool
	ActivityFeedCapacity int
	WorkerPollInterval   time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "mintbay"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		MintLatency:     envMillis("SIM_MINT_LATENCY_MS", 2000),
		ListLatency:     envMillis("SIM_LIST_LATENCY_MS", 1500),
		PurchaseLatency: envMillis("SIM_PURCHASE_LATENCY_MS", 2000),

		SeedDemoCatalog:      envBool("SEED_DEMO_CATALOG", true),
		DemoOwnedFallback:    envBool("DEMO_OWNED_FALLBACK", true),
		ActivityFeedCapacity: envInt("ACTIVITY_FEED_CAPACITY", 100),
		WorkerPollInterval:   envMillis("WORKER_POLL_INTERVAL_MS", 2000),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func envMillis(name string, fallback int) time.Duration {
	return time.Duration(envInt(name, fallback)) * time.Millisecond
}
