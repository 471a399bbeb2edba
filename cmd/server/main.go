package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gamevault/internal/auth"
	"gamevault/internal/cache"
	"gamevault/internal/config"
	"gamevault/internal/database"
	"gamevault/internal/handler"
	"gamevault/internal/logger"
	"gamevault/internal/queue"
	"gamevault/internal/repository/postgres"
	"gamevault/internal/seed"
	"gamevault/internal/service"
	"gamevault/internal/worker"

	_ "gamevault/docs"
)

// @title GameVault API
// @version 1.0
// @description Video game marketplace: gamers buy, reserve and cancel with credits
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by the login endpoints
func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, "info")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(dbCtx, dbPool); err != nil {
			log.Fatal().Err(err).Msg("failed to apply schema")
		}
	}

	// Repositories
	gamerRepo := postgres.NewGamerRepository(dbPool)
	adminRepo := postgres.NewAdministratorRepository(dbPool)
	gameRepo := postgres.NewVideoGameRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Optional Redis for the catalog cache and login rate limiting
	rdb := cache.NewRedisClient(dbCtx, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}
	catalogCache := cache.NewCatalogCache(rdb, cfg.Redis.Prefix, cfg.Redis.CacheTTL)

	// Optional RabbitMQ publisher for committed ledger events
	var publisher interface {
		service.EventPublisher
		Close() error
	} = queue.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		publisher = queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.RabbitMQ.BufferSize, cfg.RabbitMQ.DialTimeout, log)
	}
	defer publisher.Close()

	// Services
	catalogService := service.NewCatalogService(gameRepo, catalogCache, log)
	accountService := service.NewAccountService(gamerRepo, adminRepo, ledgerRepo, cfg.Auth.BcryptCost, log)
	ledgerService := service.NewLedgerService(ledgerRepo, log)
	marketplaceService := service.NewMarketplaceService(catalogService, accountService, ledgerService, txManager, publisher, log)
	expiryService := service.NewExpiryService(ledgerRepo, catalogService, accountService, ledgerService, txManager, publisher, cfg.Worker.ExpiryBatchSize, log)

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(gamerRepo, gameRepo, adminRepo, cfg.Auth.BcryptCost, log)
		if err := seeder.Run(dbCtx, cfg.Seed); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for expired reservation cancellation
	if cfg.Worker.ExpiryEnabled {
		expiryWorker := worker.NewReservationExpiryWorker(expiryService, cfg.Worker.ExpiryInterval, log)
		expiryWorker.Start(ctx)
		defer expiryWorker.Stop()
	}

	// http handler
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	h := handler.NewHandler(accountService, catalogService, marketplaceService, tokens, rdb, cfg.RateLimit, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
