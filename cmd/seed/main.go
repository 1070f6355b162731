// Command seed copies the catalogue dataset into Postgres at deploy time so
// the site can run with CATALOGUE_SOURCE=postgres. Existing rows are kept.
package main

import (
	"context"
	"flag"

	"cineverse/internal/config"
	"cineverse/internal/database"
	"cineverse/internal/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFile()

	cfg := config.Load()
	log := config.NewLogger()

	path := flag.String("catalogue", cfg.Catalogue.Path, "dataset file to seed (embedded dataset when empty)")
	flag.Parse()

	movies, err := repository.LoadCatalogueFile(*path)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate catalogue table: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalogue.LoadTimeout)
	defer cancel()

	inserted, err := db.SeedCatalogue(ctx, movies)
	if err != nil {
		log.Fatalf("Failed to seed catalogue: %v", err)
	}

	log.WithFields(logrus.Fields{
		"movies":   len(movies),
		"inserted": inserted,
		"skipped":  int64(len(movies)) - inserted,
	}).Info("Catalogue seeded")
}
