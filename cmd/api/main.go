package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/underwaterhousings/catalog_api/internal/cache"
	"github.com/underwaterhousings/catalog_api/internal/config"
	"github.com/underwaterhousings/catalog_api/internal/database"
	"github.com/underwaterhousings/catalog_api/internal/handler"
	"github.com/underwaterhousings/catalog_api/internal/middleware"
	"github.com/underwaterhousings/catalog_api/internal/repository"
	"github.com/underwaterhousings/catalog_api/internal/service"
)

// main is the entrypoint of the underwater housing catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("db_driver", cfg.DB.Driver).Msg("starting catalog api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4. Connect Redis. The catalog works without it, only uncached.
	var (
		redisClient  *cache.RedisClient
		catalogCache service.CatalogCache
	)
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed - catalog cache disabled")
		} else {
			defer redisClient.Close()
			catalogCache = cache.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
			log.Info().Dur("ttl", cfg.Cache.CatalogTTL).Msg("redis connected successfully")
		}
	} else {
		log.Info().Msg("REDIS_HOST not set - catalog cache disabled")
	}

	// 5. Initialize repositories
	manufRepo := repository.NewHousingManufacturerRepository(db)
	brandRepo := repository.NewCameraManufacturerRepository(db)
	cameraRepo := repository.NewCameraRepository(db)
	housingRepo := repository.NewHousingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// 6. Initialize services
	manufacturerSvc := service.NewHousingManufacturerService(manufRepo, catalogCache)
	brandSvc := service.NewCameraManufacturerService(brandRepo, catalogCache)
	cameraSvc := service.NewCameraService(cameraRepo, brandRepo, catalogCache)
	housingSvc := service.NewHousingService(housingRepo, manufRepo, cameraRepo, reviewRepo, catalogCache)
	catalogSvc := service.NewCatalogService(manufRepo, brandRepo, cameraRepo, housingRepo, reviewRepo, catalogCache)

	// 7. Initialize handlers
	handlers := &handler.Handlers{
		Health:               handler.NewHealthHandler(db, redisClient),
		Catalog:              handler.NewCatalogHandler(catalogSvc),
		Pages:                handler.NewPageHandler(catalogSvc, manufacturerSvc, brandSvc, cameraSvc, housingSvc),
		Assets:               handler.NewAssetHandler(cfg.AssetsDir),
		HousingManufacturers: handler.NewHousingManufacturerAdmin(manufacturerSvc),
		CameraManufacturers:  handler.NewCameraManufacturerAdmin(brandSvc),
		Cameras:              handler.NewCameraAdmin(cameraSvc),
		Housings:             handler.NewHousingAdmin(housingSvc),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	handler.RegisterRoutes(router, handlers)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
