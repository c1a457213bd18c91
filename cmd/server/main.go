package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightwarehouse-service/internal/infrastructure/auth"
	"flightwarehouse-service/internal/infrastructure/config"
	"flightwarehouse-service/internal/infrastructure/oauth"
	"flightwarehouse-service/internal/infrastructure/persistence"
	"flightwarehouse-service/internal/interface/api"
	"flightwarehouse-service/internal/interface/llm"
	"flightwarehouse-service/internal/interface/provider"
	"flightwarehouse-service/internal/interface/repository"
	"flightwarehouse-service/internal/usecase"
	"flightwarehouse-service/pkg/logger"
	"flightwarehouse-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flight Warehouse Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the warehouse connection
	log.Info("Connecting to PostgreSQL warehouse")
	gormDB, err := persistence.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repository.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate warehouse schema", "error", err)
	}

	// Set up the user store
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	airportRepo := repository.NewGormAirportRepository(gormDB)
	airlineRepo := repository.NewGormAirlineRepository(gormDB)
	flightRepo := repository.NewGormFlightRepository(gormDB)
	ingestStore := repository.NewGormIngestStore(gormDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)

	// Set up external clients
	flightProvider := provider.NewAviationstackProvider(cfg.AviationstackBaseURL, cfg.AviationstackKey, log)
	geminiClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, log)
	googleOAuth := oauth.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI, log)
	tokenService := auth.NewTokenService(cfg.SecretKey, cfg.AccessTokenExpiry)

	// Set up usecases
	ingestMetrics := metrics.NewMetrics("flightwarehouse")
	ingestOrchestrator := usecase.NewIngestOrchestrator(flightProvider, ingestStore, log, ingestMetrics)
	authService := usecase.NewAuthService(userRepo, tokenService, googleOAuth, log)
	assistantService := usecase.NewAssistantService(flightRepo, geminiClient, log)

	// Set up HTTP server
	apiServer := api.NewServer(
		authService,
		ingestOrchestrator,
		assistantService,
		airportRepo,
		airlineRepo,
		flightRepo,
		cfg.FrontendRedirect,
		log,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      apiServer.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flight Warehouse Service stopped")
}
