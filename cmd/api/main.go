package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"causalbench/internal"
	"causalbench/internal/config"
	"causalbench/internal/container"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("CAUSALBENCH_DATABASE_URL is required")
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("creating container: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	if err := c.InitWithDatabase(db); err != nil {
		log.Fatalf("initializing container: %v", err)
	}
	defer c.Close()

	addr := ":" + cfg.Server.Port
	logger.Info("causalbench API listening on %s", addr)
	if err := http.ListenAndServe(addr, c.APIServer.Handler()); err != nil {
		log.Fatal(err)
	}
}
