// Command migrate manages the database schema using the embedded goose
// migrations.
//
// Flags:
//
//	--down     roll back the most recent migration instead of applying
//	--version  print the current schema version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/app"
	"github.com/heartmarshall/habitcoach-backend/internal/config"
)

func main() {
	downFlag := flag.Bool("down", false, "roll back the most recent migration")
	versionFlag := flag.Bool("version", false, "print the current schema version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch {
	case *versionFlag:
		v, err := postgres.MigrationVersion(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Error("read schema version", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(v)
	case *downFlag:
		if err := postgres.MigrateDown(ctx, cfg.Database.DSN, logger); err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("schema up to date")
	}
}
