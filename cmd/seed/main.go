// Command seed creates the default prompt templates that are missing and
// prints the active catalog. It is safe to run repeatedly.
//
// Flags:
//
//	--quiet  do not print the active templates
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
	templaterepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/template"
	"github.com/heartmarshall/habitcoach-backend/internal/app"
	"github.com/heartmarshall/habitcoach-backend/internal/config"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
)

func main() {
	quietFlag := flag.Bool("quiet", false, "do not print the active templates")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	templates := templaterepo.New(pool)

	if err := coaching.NewCatalog(logger, templates).EnsureDefaults(ctx); err != nil {
		logger.Error("seed default templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	active, err := templates.ListActive(ctx)
	if err != nil {
		logger.Error("list templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed", slog.Int("active_templates", len(active)))

	if !*quietFlag {
		for _, t := range active {
			fmt.Printf("%s\t%s\t%v\n", t.ID, t.Name, t.Variables)
		}
	}
}
