package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"kassa/internal/infrastructure/postgres"
	"kassa/internal/shared/auth"
	"kassa/internal/shared/config"
)

const usage = `Kassa Admin CLI - Management commands for the budget API

Usage:
  admin <command> [options]

Commands:
  migrate          Apply pending database schema migrations
  hash-reset-key   Print the bcrypt hash for an operator reset key
  reset            Wipe all categories, expenses and incomes

Examples:
  # Apply schema migrations
  admin migrate

  # Generate the RESET_KEY_HASH value for a chosen key
  admin hash-reset-key --key="my-operator-key"

  # Wipe all data (asks for --confirm)
  admin reset --confirm
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		runMigrate()
	case "hash-reset-key":
		runHashResetKey(os.Args[2:])
	case "reset":
		runReset(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}
}

func runMigrate() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := postgres.RunMigrations(cfg.Database.ConnectionString()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations applied")
}

func runHashResetKey(args []string) {
	fs := flag.NewFlagSet("hash-reset-key", flag.ExitOnError)
	key := fs.String("key", "", "reset key to hash")
	fs.Parse(args)

	if *key == "" {
		log.Fatal("--key is required")
	}

	hash, err := auth.HashResetKey(*key)
	if err != nil {
		log.Fatalf("Failed to hash key: %v", err)
	}

	fmt.Println(hash)
}

func runReset(args []string) {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	confirm := fs.Bool("confirm", false, "confirm wiping all data")
	timeout := fs.Duration("timeout", 30*time.Second, "operation timeout")
	fs.Parse(args)

	if !*confirm {
		log.Fatal("Refusing to wipe data without --confirm")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := postgres.NewMaintenanceRepository(db).ResetAll(ctx); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}

	log.Println("All data wiped")
}
