// @title Ujikom Backend API
// @version 1.0
// @description Backend server for the mechanic competency exam (ujikom) administration tool.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"ujikom_backend/internal/app"
	"ujikom_backend/internal/config"
	"ujikom_backend/pkg/configwatcher"
	"ujikom_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// Hot-reload the tunable sections; thresholds and the exam timer
	// are read per request, so edits apply without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if updated, ok := newCfg.(*config.Config); ok {
			cfg.ApplyReload(updated)
			logger.Log.Info("Configuration reloaded")
		}
	})

	application.Run()
}
