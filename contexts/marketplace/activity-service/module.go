package activityservice

import (
	"log/slog"

	httpadapter "mintbay/contexts/marketplace/activity-service/adapters/http"
	"mintbay/contexts/marketplace/activity-service/adapters/memory"
	"mintbay/contexts/marketplace/activity-service/application"
	"mintbay/contexts/marketplace/activity-service/application/workers"
	"mintbay/contexts/marketplace/activity-service/ports"
)

// Module is the composition surface for the recent-activity feed.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Feed   ports.FeedStore
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Feed:   deps.Feed,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the feed against the in-process ring.
func NewInMemoryModule(capacity int, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Feed:   memory.NewFeed(capacity),
		Logger: logger,
	})
}

// NewConsumer attaches the module's feed projection to the nft event stream.
func (m Module) NewConsumer(subscriber ports.EventSubscriber, logger *slog.Logger) workers.NFTEventsConsumer {
	return workers.NFTEventsConsumer{
		Subscriber: subscriber,
		Service:    m.Service,
		Logger:     logger,
	}
}
