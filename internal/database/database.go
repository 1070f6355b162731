package database

import (
	"context"
	"fmt"
	"time"

	"cineverse/internal/config"
	"cineverse/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	return &Database{
		DB:     db,
		config: cfg,
	}, nil
}

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.config.QueryTimeout)
}

// LoadCatalogue reads the whole catalogue table in dataset order. The caller
// validates the result like any other catalogue source.
func (d *Database) LoadCatalogue(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var rows []MovieRow
	if err := d.DB.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return RowsToMovies(rows), nil
}

// SeedCatalogue inserts movies that are not in the table yet. Existing rows
// are never updated; the catalogue only grows at deploy time.
func (d *Database) SeedCatalogue(ctx context.Context, movies []models.Movie) (int64, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if len(movies) == 0 {
		return 0, nil
	}

	var inserted int64
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []MovieRow
		if err := tx.Select("id", "position").Find(&existing).Error; err != nil {
			return err
		}

		rows := PlanSeed(movies, existing)
		if len(rows) == 0 {
			return nil
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100)
		inserted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalogue: %w", err)
	}
	return inserted, nil
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the catalogue table. Only the seed command
// calls it; the web server opens the database read-only in practice.
func (d *Database) Migrate() error {
	logrus.Info("Running auto migration...")

	if err := d.DB.AutoMigrate(&MovieRow{}); err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
