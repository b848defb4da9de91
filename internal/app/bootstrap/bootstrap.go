package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	walletservice "mintbay/contexts/identity-access/wallet-service"
	activityservice "mintbay/contexts/marketplace/activity-service"
	activityredis "mintbay/contexts/marketplace/activity-service/adapters/redis"
	activityworkers "mintbay/contexts/marketplace/activity-service/application/workers"
	discoveryservice "mintbay/contexts/marketplace/discovery-service"
	discoveryports "mintbay/contexts/marketplace/discovery-service/ports"
	mediaservice "mintbay/contexts/marketplace/media-service"
	nftservice "mintbay/contexts/marketplace/nft-service"
	nftmemory "mintbay/contexts/marketplace/nft-service/adapters/memory"
	nftpostgres "mintbay/contexts/marketplace/nft-service/adapters/postgres"
	"mintbay/contexts/marketplace/nft-service/application/queries"
	nftworkers "mintbay/contexts/marketplace/nft-service/application/workers"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	nftports "mintbay/contexts/marketplace/nft-service/ports"
	"mintbay/internal/platform/cache"
	"mintbay/internal/platform/config"
	"mintbay/internal/platform/db"
	"mintbay/internal/platform/httpserver"
	"mintbay/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	// In-memory mode runs the outbox relay and feed consumer inside the api
	// process; with postgres the worker process owns them.
	relay        *nftworkers.OutboxRelay
	consumer     *activityworkers.NFTEventsConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	redis        *redis.Client
	outboxRelay  nftworkers.OutboxRelay
	consumer     activityworkers.NFTEventsConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if err := validateTopology(cfg); err != nil {
		return nil, err
	}
	latency := nftports.Latency{
		Mint:     cfg.MintLatency,
		List:     cfg.ListLatency,
		Purchase: cfg.PurchaseLatency,
	}

	app := &APIApp{
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}

	var nftModule nftservice.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		app.postgres = pg

		repo := nftpostgres.NewRepository(pg.DB, logger)
		if err := repo.AutoMigrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		nftModule = nftservice.NewModule(nftservice.Dependencies{
			Records:        repo,
			Idempotency:    repo,
			Clock:          nftpostgres.SystemClock{},
			IDGenerator:    nftpostgres.UUIDGenerator{},
			Tokens:         nftpostgres.MockAddressGenerator{},
			Receipts:       nftpostgres.MockAddressGenerator{},
			Latency:        latency,
			IdempotencyTTL: 7 * 24 * time.Hour,
			DemoFallback:   cfg.DemoOwnedFallback,
			Logger:         logger,
		})
	} else {
		var seed []entities.Record
		if cfg.SeedDemoCatalog {
			seed = nftmemory.DemoCatalog(time.Now().UTC())
		}
		nftModule = nftservice.NewInMemoryModule(seed, latency, cfg.DemoOwnedFallback, logger)
	}

	walletModule := walletservice.NewInMemoryModule(logger)
	mediaModule := mediaservice.NewInMemoryModule(logger)

	activityModule, redisClient, err := buildActivityModule(cfg, logger)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.redis = redisClient

	discoveryModule := discoveryservice.NewModule(discoveryservice.Dependencies{
		Catalog: listedCatalog{listed: nftModule.Handler.ListListed},
		Logger:  logger,
	})

	// Without postgres the outbox lives in this process, so the relay and
	// feed consumer must run here too.
	if app.postgres == nil {
		bus := messaging.NewBus(logger)
		relay := nftworkers.OutboxRelay{
			Outbox:    nftModule.Store,
			Publisher: bus,
			Clock:     nftModule.Store,
			Topic:     "nft.events",
			BatchSize: 100,
			Logger:    logger,
		}
		consumer := activityModule.NewConsumer(bus, logger)
		app.relay = &relay
		app.consumer = &consumer
	}

	app.server = httpserver.New(
		nftModule,
		discoveryModule,
		walletModule,
		mediaModule,
		activityModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return app, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required: without postgres the api process runs the relay itself")
	}
	if err := validateTopology(cfg); err != nil {
		return nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := nftpostgres.NewRepository(pg.DB, logger)
	if err := repo.AutoMigrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	activityModule, redisClient, err := buildActivityModule(cfg, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	bus := messaging.NewBus(logger)
	return &WorkerApp{
		postgres: pg,
		redis:    redisClient,
		outboxRelay: nftworkers.OutboxRelay{
			Outbox:    repo,
			Publisher: bus,
			Clock:     nftpostgres.SystemClock{},
			Topic:     "nft.events",
			BatchSize: 100,
			Logger:    logger,
		},
		consumer:     activityModule.NewConsumer(bus, logger),
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}, nil
}

// validateTopology rejects split-brain wiring: with postgres the worker
// process owns the relay and consumer, so the activity feed must live in
// redis or the api process would serve a feed nothing ever writes to.
func validateTopology(cfg config.Config) error {
	if strings.TrimSpace(cfg.PostgresDSN) != "" && strings.TrimSpace(cfg.RedisAddr) == "" {
		return errors.New("REDIS_ADDR is required with POSTGRES_DSN: the worker projects the activity feed into redis")
	}
	return nil
}

func buildActivityModule(cfg config.Config, logger *slog.Logger) (activityservice.Module, *redis.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return activityservice.NewInMemoryModule(cfg.ActivityFeedCapacity, logger), nil, nil
	}
	client, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		return activityservice.Module{}, nil, err
	}
	module := activityservice.NewModule(activityservice.Dependencies{
		Feed:   activityredis.NewFeed(client, cfg.ActivityFeedCapacity),
		Logger: logger,
	})
	return module, client, nil
}

// listedCatalog bridges the marketplace store's listed query into the
// discovery read model. Lives here so the two contexts stay import-free
// of each other.
type listedCatalog struct {
	listed queries.ListListedUseCase
}

func (c listedCatalog) ListListed(ctx context.Context) ([]discoveryports.Artwork, error) {
	records := c.listed.Execute(ctx)
	artworks := make([]discoveryports.Artwork, 0, len(records))
	for _, record := range records {
		amount, err := strconv.ParseFloat(record.PriceAmount, 64)
		if err != nil {
			amount = 0
		}
		artworks = append(artworks, discoveryports.Artwork{
			TokenID:      record.TokenID,
			Title:        record.Title,
			Creator:      record.Creator,
			PriceAmount:  amount,
			DisplayPrice: record.DisplayPrice(),
			ImageURL:     record.ImageURL,
			Description:  record.Description,
			CreatedAt:    record.CreatedAt,
		})
	}
	return artworks, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.consumer != nil {
		if err := a.consumer.Start(ctx); err != nil {
			return err
		}
	}
	if a.relay != nil {
		go a.runRelay(ctx)
	}

	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) runRelay(ctx context.Context) {
	interval := a.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := a.relay.RunOnce(ctx); err != nil {
			a.logger.Error("in-process outbox relay cycle failed",
				"event", "bootstrap_relay_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *APIApp) Close() error {
	var firstErr error
	if a.redis != nil {
		firstErr = a.redis.Close()
	}
	if a.postgres != nil {
		if err := a.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.consumer.Start(ctx); err != nil {
		return err
	}

	interval := w.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", interval.String(),
	)

	for {
		// A transient DB or bus fault must not kill the process; the
		// relay retries pending rows on the next tick.
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			w.logger.Error("worker outbox relay cycle failed",
				"event", "bootstrap_worker_relay_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	var firstErr error
	if w.redis != nil {
		firstErr = w.redis.Close()
	}
	if w.postgres != nil {
		if err := w.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
