// Package postgres opens the GORM connection used by the blob repository.
//
// Two drivers are supported. "pgx" (the default) goes through gorm's
// postgres dialector; "pq" opens a database/sql pool with github.com/lib/pq
// and hands it to the same dialector:
//
//	db, err := postgres.Open(postgres.Config{
//	    Driver: "pq",
//	    Host:   "localhost",
//	    Port:   "5432",
//	    User:   "restaurant",
//	    Name:   "restaurant",
//	})
package postgres

import (
	"database/sql"
	"fmt"

	"restaurant/internal/adapters/out/postgres/blobrepo"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "pq"
)

// Config holds the connection settings.
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open connects with the configured driver and migrates the schema.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", DriverPgx:
		dialector = pgdriver.Open(cfg.DSN())
	case DriverPq:
		sqlDB, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open lib/pq pool: %w", err)
		}
		dialector = pgdriver.New(pgdriver.Config{Conn: sqlDB})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&blobrepo.BlobDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
