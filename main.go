package main

import (
	"flag"
	"log"
	"path/filepath"
	"trivia_quiz_backend/internal/app"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/pkg/configwatcher"
	"trivia_quiz_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup (even in release mode)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), func(newCfg *config.Config) {
		application.ReloadConfig(newCfg)
	})

	application.Run()
}
