package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/smartaisle/smartcart-backend/api/routes"
	"github.com/smartaisle/smartcart-backend/internal/analytics"
	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/catalog"
	"github.com/smartaisle/smartcart-backend/internal/position"
	"github.com/smartaisle/smartcart-backend/internal/promotions"
	"github.com/smartaisle/smartcart-backend/internal/realtime"
	"github.com/smartaisle/smartcart-backend/internal/storelayout"
	"github.com/smartaisle/smartcart-backend/pkg/config"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
	"github.com/smartaisle/smartcart-backend/pkg/metrics"
	"github.com/smartaisle/smartcart-backend/pkg/redis"
)

// cartBackend is what main needs from either cart store flavor.
type cartBackend interface {
	cart.Store
	analytics.CartInventory
	SetNotifier(cart.Notifier)
}

type positionBackend interface {
	position.Store
	SetNotifier(position.Notifier)
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	pricing := cart.PricingFromRates(cfg.Pricing.TaxRate, cfg.Pricing.DiscountRate, cfg.Pricing.DiscountThreshold)

	var (
		cartStore     cartBackend
		positionStore positionBackend
		redisP        redis.Pinger
		closeRedis    func() error
	)
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		cartStore = cart.NewRedisStore(redisClient, pricing, nil)
		positionStore = position.NewRedisStore(redisClient, nil)
		redisP = redisClient
		closeRedis = redisClient.Close
	default:
		cartStore = cart.NewMemoryStore(pricing, nil)
		positionStore = position.NewMemoryStore(nil)
	}
	if closeRedis != nil {
		defer func() {
			if err := closeRedis(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	hub := realtime.NewHub(cfg.Realtime, positionStore, cartStore, logg, metrics.NewRealtimeMetrics(registry))
	cartStore.SetNotifier(hub)
	positionStore.SetNotifier(hub)

	catalogService := catalog.NewService()
	promotionsService := promotions.NewService()
	layoutService := storelayout.NewService()
	analyticsService := analytics.NewService(cartStore, hub, catalogService)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Store.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, redisP, registry,
			cartStore, positionStore, hub,
			catalogService, promotionsService, layoutService, analyticsService,
		),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
