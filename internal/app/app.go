// Package app wires the stores and services together once per process.
package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/ports"
	"github.com/futsalhub/booking-system/internal/core/service"
	"github.com/futsalhub/booking-system/internal/infrastructure/config"
	"github.com/futsalhub/booking-system/internal/infrastructure/db/memory"
	"github.com/futsalhub/booking-system/internal/infrastructure/db/redis"
	"github.com/futsalhub/booking-system/internal/infrastructure/notify"
	"github.com/futsalhub/booking-system/internal/infrastructure/queue"
)

// Container holds the stores built at startup. It is passed by reference to
// every layer that needs it; nothing else keeps global booking state.
type Container struct {
	Identities *service.IdentityService
	Sessions   *service.SessionService
	Catalog    *service.CatalogService
	Ledger     *service.LedgerService

	Dispatcher *queue.Dispatcher
	Redis      *goredis.Client
}

// New builds a Container from cfg and starts the notification workers.
// Call Close to stop them.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{}

	var sessions ports.SessionStore = memory.NewSessionStore()
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		c.Redis = client
		sessions = redis.NewSessionStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session revocations stored in redis")
	}

	facilities := memory.NewFacilityRepository()

	c.Dispatcher = queue.NewDispatcher(cfg.Notify.Workers, notify.NewLogNotifier(component(log, "notifier")), component(log, "dispatcher"))
	c.Dispatcher.Start(ctx)

	c.Identities = service.NewIdentityService(memory.NewIdentityRepository(), cfg.Session.BcryptCost, component(log, "identity"))
	c.Sessions = service.NewSessionService(sessions, cfg.JWTSecret, cfg.Session.TTL, component(log, "session"))
	c.Catalog = service.NewCatalogService(facilities, component(log, "catalog"))
	c.Ledger = service.NewLedgerService(facilities, memory.NewReservationRepository(), c.Dispatcher, component(log, "ledger"))

	return c, nil
}

// Close drains pending notifications and releases external connections.
func (c *Container) Close() error {
	c.Dispatcher.Stop()
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
