package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"campus-assistant-be/internal/bootstrap"
	"campus-assistant-be/internal/config"
	"campus-assistant-be/internal/server"
	"campus-assistant-be/internal/tracer"
	"campus-assistant-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	// Postgres is optional. Without a DSN the app serves seeded demo data
	// from memory, which is all local development needs.
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
