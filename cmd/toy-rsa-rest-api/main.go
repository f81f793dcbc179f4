// cmd/toy-rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/toy-rsa/internal/api/rest/v1"
	"github.com/MGTheTrain/toy-rsa/internal/app"
	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/cache"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/textio"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	services *appServices
}

type appServices struct {
	keys       toyrsa.KeyService
	encryption toyrsa.EncryptionService
	decryption toyrsa.DecryptionService
	artifacts  artifacts.ArtifactService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	artifactRepo, err := persistence.NewGormArtifactRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact repository: %w", err)
	}

	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	engines, err := initializeEngines(cfg.Engine, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engines: %w", err)
	}

	services, err := initializeApplicationServices(cfg, engines, artifactRepo, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		metrics:  m,
		services: services,
	}, nil
}

// initializeEngines creates one engine per exponent strategy so requests may pick either
func initializeEngines(settings config.EngineSettings, log logger.Logger) ([]toyrsa.Engine, error) {
	opts, err := cryptography.EngineOptionsFromSettings(settings)
	if err != nil {
		return nil, err
	}

	var engines []toyrsa.Engine
	for _, strategy := range []toyrsa.ExponentStrategy{toyrsa.StrategyFixed, toyrsa.StrategySmallestCoprime} {
		opts.Strategy = strategy
		engine, err := cryptography.NewToyRSAEngine(opts, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s engine: %w", strategy, err)
		}
		engines = append(engines, engine)
	}

	log.Info("Toy RSA engines initialized, default p=", settings.P, " q=", settings.Q, " strategy=", settings.Strategy)
	return engines, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	engines []toyrsa.Engine,
	artifactRepo artifacts.ArtifactRepository,
	m *metrics.Metrics,
	log logger.Logger,
) (*appServices, error) {
	keyCache := cache.NewKeyCacheFromSettings(cfg.KeyCache)

	keyService, err := app.NewKeyService(engines, cfg.Engine, keyCache, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	codec := cryptography.NewTextCodec()
	store := textio.NewFileStore(log)

	encryptionService, err := app.NewEncryptionService(keyService, codec, store, artifactRepo, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryption service: %w", err)
	}

	decryptionService, err := app.NewDecryptionService(keyService, codec, store, artifactRepo, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create decryption service: %w", err)
	}

	artifactService, err := app.NewArtifactService(artifactRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact service: %w", err)
	}

	return &appServices{
		keys:       keyService,
		encryption: encryptionService,
		decryption: decryptionService,
		artifacts:  artifactService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.services.keys,
		deps.services.encryption,
		deps.services.decryption,
		deps.services.artifacts,
		deps.metrics,
	)

	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/toy-rsa.yaml")
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
