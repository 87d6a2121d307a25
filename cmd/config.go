package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"restaurant/internal/adapters/out/postgres"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
)

// Config is read from the environment. Empty values fall back to the
// defaults applied by WithDefaults.
type Config struct {
	HTTPPort         string
	StorageDriver    string
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	DataDir          string
	SpoolDir         string
	TimeZone         string
	AMQPURL          string
	AMQPExchange     string
	AutosaveSchedule string
	LogLevel         string
	PrintDelay       string
}

// WithDefaults fills unset values:
//
//	HTTP_PORT=8080 STORAGE_DRIVER=file DB_DRIVER=pgx DB_SSLMODE=disable
//	DATA_DIR=./data SPOOL_DIR=./spool TIME_ZONE=Local
//	AMQP_EXCHANGE=restaurant.orders AUTOSAVE_SCHEDULE="*/30 * * * * *"
//	LOG_LEVEL=info PRINT_DELAY=300ms
//
// AMQP_URL has no default; change events are published only when it is set.
func (c Config) WithDefaults() Config {
	set := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	set(&c.HTTPPort, "8080")
	set(&c.StorageDriver, StorageDriverFile)
	set(&c.DBDriver, postgres.DriverPgx)
	set(&c.DBSslMode, "disable")
	set(&c.DataDir, "./data")
	set(&c.SpoolDir, "./spool")
	set(&c.TimeZone, "Local")
	set(&c.AMQPExchange, "restaurant.orders")
	set(&c.AutosaveSchedule, "*/30 * * * * *")
	set(&c.LogLevel, "info")
	set(&c.PrintDelay, "300ms")
	return c
}

// Location resolves TIME_ZONE; day keys and hour labels are computed in it.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) PrintDelayDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.PrintDelay)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid PRINT_DELAY %q", c.PrintDelay)
	}
	return d, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// Validate checks everything that can be checked before connecting.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverFile, StorageDriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageDriver == StorageDriverPostgres && c.DBDriver != postgres.DriverPgx && c.DBDriver != postgres.DriverPq {
		return fmt.Errorf("invalid DB_DRIVER %q", c.DBDriver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.PrintDelayDuration(); err != nil {
		return err
	}
	_, err := c.SlogLevel()
	return err
}
