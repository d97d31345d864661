package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/franciscosanchezn/gin-pizza-restaurants/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
// An explicit LOG_LEVEL wins over the environment default
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			log.Warnf("Invalid LOG_LEVEL %q, keeping %s", raw, log.GetLevel())
		} else {
			log.SetLevel(level)
		}
	}
	database.SetLogLevel(log.GetLevel())
}

// bootstrap runs the common startup sequence shared by every command
func bootstrap() (*config.Config, error) {
	loadDotenvFile()
	setUpLogger()

	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return conf, nil
}

// setupDatabase opens the database and makes sure the schema exists
func setupDatabase(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
