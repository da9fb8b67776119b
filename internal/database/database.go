package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glucoach/glucoach/internal/config"
	"github.com/glucoach/glucoach/internal/database/migrations"
	"github.com/glucoach/glucoach/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the GORM connection together with a human-readable
// location used by the health endpoint.
type Database struct {
	*gorm.DB
	path string
}

// New opens the configured store (embedded SQLite by default, Postgres
// when DB_DRIVER=postgres), migrates the schema and seeds the singleton
// profile row.
func New(cfg config.DBConfig) (*Database, error) {
	var dialector gorm.Dialector
	var path string

	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)
		dialector = postgres.Open(dsn)
		path = fmt.Sprintf("postgres://%s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
	default:
		path = cfg.FilePath
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Reading{}, &domain.Profile{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	migrations.Register("001_seed_profile", seedProfile)
	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Database{DB: db, path: path}, nil
}

// seedProfile creates the singleton profile row with defaults. Idempotent
// through the migration registry and the FirstOrCreate below.
func seedProfile(db *gorm.DB) error {
	profile := domain.DefaultProfile()
	profile.ID = 1
	return db.Where("id = ?", 1).FirstOrCreate(&profile).Error
}

// Ping verifies the store is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.WithContext(ctx).Exec("SELECT 1").Error
}

// Path returns where the data lives, for the health endpoint.
func (d *Database) Path() string {
	return d.path
}
