package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/postgres"
	"github.com/cooperativa/facturabot/migrations"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		logger.Fatalw("Failed to read embedded migrations", "error", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	// Check if we're in dry-run mode
	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		for _, name := range names {
			sql, err := migrations.FS.ReadFile(name)
			if err != nil {
				logger.Fatalw("Failed to read migration", "file", name, "error", err)
			}
			fmt.Printf("-- %s\n%s\n", name, sql)
		}
		return
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	client, err := postgres.NewClient(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Running database migrations...")
	for _, name := range names {
		sql, err := migrations.FS.ReadFile(name)
		if err != nil {
			logger.Fatalw("Failed to read migration", "file", name, "error", err)
		}
		if _, err := client.DB().ExecContext(ctx, string(sql)); err != nil {
			logger.Fatalw("Failed to apply migration", "file", name, "error", err)
		}
		logger.Infow("Applied migration", "file", name)
	}

	logger.Info("Migration completed successfully")
}
