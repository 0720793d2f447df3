package main

import (
	"fmt"
	"io"
	"log"

	"github.com/sinawatra/TamDan/internal/domain/transaction"
	"github.com/sinawatra/TamDan/internal/domain/user"
	"github.com/sinawatra/TamDan/internal/infrastructure/postgres"
	"github.com/sinawatra/TamDan/internal/infrastructure/sqlite"
	httphandlers "github.com/sinawatra/TamDan/internal/interfaces/http"
	"github.com/sinawatra/TamDan/internal/shared/auth"
	"github.com/sinawatra/TamDan/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	db io.Closer

	// Repositories
	Users        user.Repository
	Transactions transaction.Repository

	// Auth
	JWT *auth.JWT

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	TransactionHandler *httphandlers.TransactionHandler
}

// NewDependencies initializes all application dependencies. The storage
// backend is selected by DB_DRIVER; both backends satisfy the same
// repository interfaces.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		deps.db = db
		deps.Users = postgres.NewUserRepository(db)
		deps.Transactions = postgres.NewTransactionRepository(db)
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		deps.db = db
		deps.Users = sqlite.NewUserRepository(db)
		deps.Transactions = sqlite.NewTransactionRepository(db)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	log.Printf("Connected to database (%s)", cfg.Database.Driver)

	deps.JWT = auth.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	deps.AuthHandler = httphandlers.NewAuthHandler(deps.Users, deps.JWT)
	deps.TransactionHandler = httphandlers.NewTransactionHandler(deps.Transactions)

	return deps, nil
}

// Close releases the database connection.
func (d *Dependencies) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
