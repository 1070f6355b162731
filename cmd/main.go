package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cineverse/docs"
	"cineverse/internal/config"
	"cineverse/internal/database"
	"cineverse/internal/handlers"
	"cineverse/internal/metrics"
	"cineverse/internal/models"
	"cineverse/internal/repository"
	"cineverse/internal/routes"
	"cineverse/internal/services"
	"cineverse/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title CineVerse API
// @version 1.0
// @description Read-only access to the CineVerse movie catalogue and its search-engine metadata

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	config.LoadEnvFile()

	cfg := config.Load()
	log := config.NewLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The database handle stays open for the health check when the
	// catalogue is read from Postgres.
	var db *database.Database
	var dbCheck handlers.HealthChecker
	if cfg.Catalogue.Source == config.SourcePostgres {
		var err error
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		dbCheck = db
	}

	movies, err := loadCatalogue(cfg, db, log)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}

	m := metrics.New()
	m.SetCatalogueSize(len(movies))

	movieRepo := repository.NewMovieRepository(movies)
	metadataBuilder := services.NewMetadataBuilder(cfg.Site)
	movieService := services.NewMovieService(movieRepo, metadataBuilder, log)

	pageHandler := handlers.NewPageHandler(movieService, cfg.Site, m, log)
	movieHandler := handlers.NewMovieHandler(movieService, log)
	siteHandler := handlers.NewSiteHandler(movieService, dbCheck)

	app := fiber.New(fiber.Config{
		AppName:      "CineVerse",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		Views:        views.New(),
		ErrorHandler: handlers.ErrorHandler(pageHandler, log),
	})

	setupMiddleware(app)

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, pageHandler, movieHandler, siteHandler, m)

	app.Static("/", cfg.Server.StaticDir, fiber.Static{
		Compress: true,
		MaxAge:   3600,
	})

	go gracefulShutdown(app, db, log)

	log.WithFields(logrus.Fields{
		"port":   cfg.Server.Port,
		"movies": movieRepo.Count(),
		"source": cfg.Catalogue.Source,
	}).Info("CineVerse starting")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

// loadCatalogue reads the dataset from the configured source and seals it
// before any request is served. db is nil unless the source is postgres.
func loadCatalogue(cfg *config.Config, db *database.Database, log *logrus.Logger) ([]models.Movie, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalogue.LoadTimeout)
	defer cancel()

	var movies []models.Movie
	var err error
	if db != nil {
		movies, err = db.LoadCatalogue(ctx)
		if err != nil {
			return nil, err
		}
		if err := repository.ValidateCatalogue(movies); err != nil {
			return nil, err
		}
	} else {
		movies, err = repository.LoadCatalogueFile(cfg.Catalogue.Path)
		if err != nil {
			return nil, err
		}
	}

	if cfg.MinIO.Enabled {
		posters, err := services.NewPosterService(&cfg.MinIO, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize poster storage: %w", err)
		}
		movies = posters.Resolve(movies)
		if _, err := posters.Audit(ctx, movies); err != nil {
			log.WithError(err).Warn("Poster audit failed, continuing with configured poster URLs")
		}
	}

	log.WithFields(logrus.Fields{
		"source": cfg.Catalogue.Source,
		"movies": len(movies),
	}).Info("Catalogue loaded")
	return movies, nil
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, HEAD, OPTIONS",
		MaxAge:       86400,
	}))
}

func gracefulShutdown(app *fiber.App, db *database.Database, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}

	log.Info("Server shutdown complete")
}
