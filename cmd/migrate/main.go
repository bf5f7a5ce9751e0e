package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edurealm/projects-backend/internal/app"
	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	pg, err := db.NewPostgresService(cfg.Database.DSN(), logg)
	if err != nil {
		logg.Fatal("connect postgres failed", "error", err)
	}

	if err := db.AutoMigrateAll(pg.DB()); err != nil {
		logg.Fatal("auto-migration failed", "error", err)
	}
	logg.Info("migration complete", "database", cfg.Database.Name)
}
