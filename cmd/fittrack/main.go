package main

import (
	"github.com/joho/godotenv"

	"github.com/fittrack-dev/fittrack/db"
	"github.com/fittrack-dev/fittrack/internal/config"
	"github.com/fittrack-dev/fittrack/internal/logger"
	"github.com/fittrack-dev/fittrack/internal/router"
)

func main() {
	// A missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err.Error())
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}

	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("failed to migrate database", "error", err.Error())
	}

	if err := db.SeedExercises(gdb); err != nil {
		logger.Fatal("failed to seed exercise catalog", "error", err.Error())
	}

	r := router.New(cfg, gdb)

	logger.Info("starting server", "port", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", "error", err.Error())
	}
}
