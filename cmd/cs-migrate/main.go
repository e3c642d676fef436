package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
	"github.com/tuanvumaihuynh/coffee-store/internal/log"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running cs-migrate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	command := flag.String("command", "up",
		fmt.Sprintf("goose command to run (%s)", strings.Join(db.MigrateCommands, ", ")))
	flag.Parse()

	if !slices.Contains(db.MigrateCommands, *command) {
		return fmt.Errorf("unsupported migrate command %q", *command)
	}

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("config new: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("db new pgx pool: %w", err)
	}
	defer pgxPool.Close()

	logger.InfoContext(ctx, "running database migration", slog.String("command", *command))

	if err := db.Migrate(ctx, pgxPool, *command); err != nil {
		return fmt.Errorf("db migrate: %w", err)
	}

	logger.InfoContext(ctx, "database migration completed successfully")

	return nil
}
