package main

import (
	"admindash_backend/database"
	"admindash_backend/internal/config"
	"admindash_backend/internal/logger"
	"admindash_backend/internal/seed"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	summary, err := seed.NewSeeder(db).Run()
	if err != nil {
		logger.Fatal("Seed failed", "error", err)
	}
	logger.Info("Seed finished",
		"users", summary.Users,
		"subscriptions", summary.Subscriptions,
		"tickets", summary.Tickets,
	)
}
