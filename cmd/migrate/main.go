package main

import (
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		utils.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
	}
}
