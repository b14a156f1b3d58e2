package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"

	"express/internal/app"
	"express/internal/config"
	"express/internal/domain"
	"express/internal/handler"
	internalRedis "express/internal/redis"
	"express/internal/repository"
	"express/internal/repository/postgres"
	"express/internal/service"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	fleet, err := config.LoadFleet(cfg.Fleet.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load fleet: %v", err)
	}
	log.Printf("Fleet loaded: vehicles=%d source=%q", len(fleet), cfg.Fleet.ConfigPath)

	offers, err := loadOffers(ctx, cfg, nrApp)
	if err != nil {
		log.Fatalf("failed to load offers: %v", err)
	}
	log.Printf("Offers loaded: count=%d", len(offers))

	var idempotencyStore internalRedis.IdempotencyStoreInterface
	if cfg.Redis.Enabled {
		redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		idempotencyStore = internalRedis.NewIdempotencyStore(redisClient)
		log.Println("Connected to Redis")
	}

	server, err := wireServer(fleet, offers, idempotencyStore, nrApp, cfg)
	if err != nil {
		log.Fatalf("failed to wire server: %v", err)
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Println("Server exited")
}

// loadOffers reads the offer table from PostgreSQL when enabled, falling back
// to the built-in offers otherwise or when the table is empty.
func loadOffers(ctx context.Context, cfg *config.Config, nrApp *newrelic.Application) ([]domain.Offer, error) {
	var repo repository.OfferRepository = repository.NewStaticOfferRepository(domain.DefaultOffers())

	if cfg.Database.Enabled {
		db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")
		repo = postgres.NewOfferRepository(db)
	}

	return repository.LoadOffers(ctx, repo, domain.DefaultOffers())
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(
	fleet []domain.VehicleConfig,
	offers []domain.Offer,
	idempotencyStore internalRedis.IdempotencyStoreInterface,
	nrApp *newrelic.Application,
	cfg *config.Config,
) (*http.Server, error) {
	seed := cfg.Fleet.NameSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize services.
	notificationService := service.NewNotificationService()
	dispatcher, err := service.NewDispatcher(fleet, offers, notificationService, service.NewRandomNamer(seed))
	if err != nil {
		return nil, err
	}

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		PackageHandler:   handler.NewPackageHandler(dispatcher),
		VehicleHandler:   handler.NewVehicleHandler(dispatcher),
		StateHandler:     handler.NewStateHandler(dispatcher, notificationService),
		IdempotencyStore: idempotencyStore,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server. WriteTimeout defaults to zero so the notification
	// stream stays open.
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
