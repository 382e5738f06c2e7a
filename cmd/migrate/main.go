// Command migrate runs schema operations for the backend.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"devconnector/internal/config"
	"devconnector/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate/main.go [-force] <auto|status|reset>")
}

func run() error {
	force := flag.Bool("force", false, "allow reset in production")
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "auto":
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("auto schema apply failed: %w", err)
		}
		log.Println("automigrations applied")
	case "status":
		status, err := database.SchemaStatus(db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		pending := 0
		for _, s := range status {
			state := "present"
			if !s.Exists {
				state = "missing"
				pending++
			}
			log.Printf("%-12s %s", s.Table, state)
		}
		log.Printf("driver=%s env=%s tables=%d missing=%d", cfg.DBDriver, cfg.Env, len(status), pending)
	case "reset":
		if cfg.IsProduction() && !*force {
			return fmt.Errorf("refusing to reset a production database without -force")
		}
		if err := database.Reset(db); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		log.Println("schema dropped and recreated")
	default:
		return usage()
	}

	return nil
}
