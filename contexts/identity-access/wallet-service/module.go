package walletservice

import (
	"log/slog"

	httpadapter "mintbay/contexts/identity-access/wallet-service/adapters/http"
	"mintbay/contexts/identity-access/wallet-service/adapters/memory"
	solanaadapter "mintbay/contexts/identity-access/wallet-service/adapters/solana"
	"mintbay/contexts/identity-access/wallet-service/application"
	"mintbay/contexts/identity-access/wallet-service/ports"
)

// Module is the composition surface for the mock wallet provider.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Sessions ports.SessionRepository
	Keys     ports.KeypairGenerator
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Sessions: deps.Sessions,
		Keys:     deps.Keys,
		Clock:    deps.Clock,
		IDs:      deps.IDs,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule wires sessions in memory with real keypair generation.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Sessions: store,
		Keys:     solanaadapter.KeypairGenerator{},
		Clock:    store,
		IDs:      store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
