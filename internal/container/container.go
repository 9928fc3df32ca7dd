package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"causalbench/adapters/postgres"
	"causalbench/app"
	"causalbench/internal/api"
	"causalbench/internal/config"
	"causalbench/ports"
)

// Container holds the application dependencies and manages their
// lifecycle.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories
	RunRepo ports.RunRepository

	// Services
	SearchService *app.SearchService

	// HTTP surface
	APIServer *api.Server
}

// New creates a container; database-backed components stay nil until
// InitWithDatabase.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase wires the components that need database access.
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	c.DB = db
	c.RunRepo = postgres.NewRunRepository(db)
	c.SearchService = app.NewSearchService(c.RunRepo)
	c.APIServer = api.NewServer(c.RunRepo)
	return nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
