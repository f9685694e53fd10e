// Command migrate runs schema operations for the SQL post store.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"socialmanager/internal/config"
	"socialmanager/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status|sync-sequence>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StoreDriver == config.StoreMemory {
		return fmt.Errorf("STORE_DRIVER is %q; nothing to migrate", cfg.StoreDriver)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "up":
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Println("posts schema applied")
	case "status":
		status, err := database.GetSchemaStatus(db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		log.Printf("driver=%s posts_table=%t rows=%d", status.Driver, status.HasPosts, status.PostCount)
	case "sync-sequence":
		if err := database.SyncPostSequence(db); err != nil {
			return err
		}
		log.Println("posts id sequence synced")
	default:
		return usage()
	}
	return nil
}
