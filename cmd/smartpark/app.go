// README: Wires stores, caches and services from config for every subcommand.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"smartpark/internal/config"
	"smartpark/internal/infra"
	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/occupancy"
	"smartpark/internal/modules/pricing"
	"smartpark/internal/modules/spot"
	"smartpark/internal/modules/zone"
)

type app struct {
	cfg      config.Config
	zones    zone.Reader
	spots    spot.Repository
	bookings booking.Repository
	redis    *redis.Client

	closers []func(context.Context) error
	cancels []context.CancelFunc
	bg      sync.WaitGroup
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}

	shutdownTracer, err := infra.InitTracer(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, shutdownTracer)

	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		db, disconnect, err := infra.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, disconnect)
		a.zones = zone.NewMongoStore(db)
		a.spots = spot.NewMongoStore(db)
		a.bookings = booking.NewMongoStore(db)
	default:
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { pool.Close(); return nil })
		a.zones = zone.NewStore(pool)
		a.spots = spot.NewStore(pool)
		a.bookings = booking.NewStore(pool)
	}

	if a.redis = infra.NewRedis(cfg.Redis.Addr); a.redis != nil {
		client := a.redis
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	}
	return a, nil
}

func (a *app) pricingService() (*pricing.Service, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	demand := pricing.NewCachedEstimator(
		pricing.NewHistoricalDemand(a.zones, a.spots, a.bookings),
		a.redis,
		a.cfg.Pricing.DemandCacheTTL,
	)
	return pricing.NewService(a.zones, demand, a.bookings, pricing.DefaultRateTable(loc)), nil
}

// reconciler publishes status changes when Rabbit.URL is set.
func (a *app) reconciler() (*occupancy.Service, error) {
	var pub occupancy.Publisher
	if a.cfg.Rabbit.URL != "" {
		p, err := infra.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange)
		if err != nil {
			return nil, fmt.Errorf("publisher: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return p.Close() })
		pub = p
	}
	return occupancy.NewService(a.spots, a.bookings, pub, occupancy.Config{
		Interval:            a.cfg.Reconcile.Interval,
		PreserveMaintenance: a.cfg.Reconcile.PreserveMaintenance,
	}), nil
}

// goBackground runs fn until ctx ends or Close is called. Close waits for fn to
// return before releasing any resource fn may still be using.
func (a *app) goBackground(ctx context.Context, fn func(context.Context)) {
	ctx, cancel := context.WithCancel(ctx)
	a.cancels = append(a.cancels, cancel)
	a.bg.Add(1)
	go func() {
		defer a.bg.Done()
		fn(ctx)
	}()
}

// Close stops background work, then releases resources in reverse order of acquisition.
func (a *app) Close(ctx context.Context) {
	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil
	a.bg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Printf("smartpark: shutdown: %v", err)
		}
	}
	a.closers = nil
}
