package nftservice

import (
	"log/slog"
	"time"

	httpadapter "mintbay/contexts/marketplace/nft-service/adapters/http"
	"mintbay/contexts/marketplace/nft-service/adapters/memory"
	"mintbay/contexts/marketplace/nft-service/application/commands"
	"mintbay/contexts/marketplace/nft-service/application/queries"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	"mintbay/contexts/marketplace/nft-service/ports"
)

// Module is the composition surface for the marketplace store. Runtime
// wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Records        ports.RecordRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Tokens         ports.TokenIDGenerator
	Receipts       ports.ReceiptGenerator
	Latency        ports.Latency
	IdempotencyTTL time.Duration
	DemoFallback   bool
	Logger         *slog.Logger
}

// NewModule wires the store's use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	mint := commands.MintUseCase{
		Records:        deps.Records,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDs:            deps.IDGenerator,
		Tokens:         deps.Tokens,
		Latency:        deps.Latency.Mint,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	listForSale := commands.ListForSaleUseCase{
		Records:        deps.Records,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDs:            deps.IDGenerator,
		Latency:        deps.Latency.List,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	purchase := commands.PurchaseUseCase{
		Records:        deps.Records,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDs:            deps.IDGenerator,
		Receipts:       deps.Receipts,
		Latency:        deps.Latency.Purchase,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}

	handler := httpadapter.Handler{
		Mint:        mint,
		ListForSale: listForSale,
		Purchase:    purchase,
		GetRecord:   queries.GetRecordUseCase{Records: deps.Records, Logger: deps.Logger},
		ListOwned: queries.ListOwnedUseCase{
			Records:      deps.Records,
			Clock:        deps.Clock,
			DemoFallback: deps.DemoFallback,
			Logger:       deps.Logger,
		},
		ListListed: queries.ListListedUseCase{Records: deps.Records, Logger: deps.Logger},
		Logger:     deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires the store against the in-memory adapter, which
// also serves as clock and id generators. This is the default runtime path;
// postgres wiring replaces it when a DSN is configured.
func NewInMemoryModule(seed []entities.Record, latency ports.Latency, demoFallback bool, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Records:        store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		Tokens:         store,
		Receipts:       store,
		Latency:        latency,
		IdempotencyTTL: 7 * 24 * time.Hour,
		DemoFallback:   demoFallback,
		Logger:         logger,
	})
	module.Store = store
	return module
}
