package mediaservice

import (
	"log/slog"

	httpadapter "mintbay/contexts/marketplace/media-service/adapters/http"
	"mintbay/contexts/marketplace/media-service/adapters/memory"
	"mintbay/contexts/marketplace/media-service/application"
	"mintbay/contexts/marketplace/media-service/ports"
)

// Module is the composition surface for the upload provider.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Assets ports.AssetRepository
	Clock  ports.Clock
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Assets: deps.Assets,
		Clock:  deps.Clock,
		IDs:    deps.IDs,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Assets: store,
		Clock:  store,
		IDs:    store,
		Logger: logger,
	})
	module.Store = store
	return module
}
