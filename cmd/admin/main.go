package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sinawatra/TamDan/internal/domain/user"
	"github.com/sinawatra/TamDan/internal/infrastructure/postgres"
	"github.com/sinawatra/TamDan/internal/infrastructure/sqlite"
	"github.com/sinawatra/TamDan/internal/shared/auth"
	"github.com/sinawatra/TamDan/internal/shared/config"
)

const usage = `TamDan Admin CLI - Management commands for the TamDan API

Usage:
  admin <command> [options]

Commands:
  add-user   Create a user account without going through the HTTP API

Examples:
  # Create a user against the configured database
  admin add-user --name="Dara" --email=dara@example.com --password=secret

  # Create a user in a local SQLite database
  DB_DRIVER=sqlite SQLITE_PATH=data/tamdan.sqlite \
    admin add-user --name="Dara" --email=dara@example.com --password=secret
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "add-user":
		runAddUser(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func runAddUser(args []string) {
	fs := flag.NewFlagSet("add-user", flag.ExitOnError)
	name := fs.String("name", "", "Display name for the new user")
	email := fs.String("email", "", "Email address (must be unique)")
	password := fs.String("password", "", "Plaintext password, hashed before storage")
	fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		fmt.Println("Error: --name, --email, and --password are required")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	users, closer, err := openUserRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer closer.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := users.Create(ctx, user.CreateUserParams{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %d (%s <%s>)\n", u.ID, u.Name, u.Email)
}

func openUserRepository(cfg *config.Config) (user.Repository, io.Closer, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(db), db, nil
	default:
		db, err := postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(db), db, nil
	}
}
