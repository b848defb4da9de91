package discoveryservice

import (
	"log/slog"

	httpadapter "mintbay/contexts/marketplace/discovery-service/adapters/http"
	"mintbay/contexts/marketplace/discovery-service/application"
	"mintbay/contexts/marketplace/discovery-service/ports"
)

// Module is the composition surface for the browse/discover read side.
type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Catalog ports.Catalog
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
