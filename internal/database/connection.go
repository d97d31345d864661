package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the verbosity of the database package logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := cfg.DialectName()
	if driver == "" {
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	gormConfig := &gorm.Config{
		// Map driver specific constraint errors to gorm.ErrForeignKeyViolated and friends
		TranslateError: true,
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	// Retry logic: max 5 attempts with exponential backoff
	maxRetries := 5
	retryDelays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		switch driver {
		case "postgres":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		case "sqlite":
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)
		}

		if err == nil {
			// Connection successful, verify with ping
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				log.WithError(sqlErr).Error("Failed to get database instance")
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				log.WithError(pingErr).Error("Failed to ping database")
				err = pingErr
			} else {
				log.Info("Database connection successful, configuring connection pool")
				configureConnectionPool(sqlDB, cfg.inMemory())

				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")

				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB, singleConn bool) {
	maxOpen, lifetime := 25, 5*time.Minute
	if singleConn {
		// closing the only connection would drop the in-memory database
		maxOpen, lifetime = 1, 0
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(lifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    5,
		"conn_max_lifetime": lifetime.String(),
	}).Debug("Connection pool configured")
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
