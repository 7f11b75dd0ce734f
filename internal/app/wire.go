package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/metrics"
	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	aimessagerepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/aimessage"
	chatrepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/chat"
	checkinrepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/checkin"
	goalrepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/goal"
	templaterepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/template"
	userrepo "github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/habitcoach-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/habitcoach-backend/internal/adapter/provider/huggingface"
	"github.com/heartmarshall/habitcoach-backend/internal/config"
	"github.com/heartmarshall/habitcoach-backend/internal/service/chat"
	"github.com/heartmarshall/habitcoach-backend/internal/service/checkin"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
	"github.com/heartmarshall/habitcoach-backend/internal/service/goal"
	"github.com/heartmarshall/habitcoach-backend/internal/service/reminder"
	templatesvc "github.com/heartmarshall/habitcoach-backend/internal/service/template"
	"github.com/heartmarshall/habitcoach-backend/internal/service/user"
	"github.com/heartmarshall/habitcoach-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitcoach-backend/internal/transport/rest"
)

// Deps are the external resources the HTTP handler is built on.
type Deps struct {
	Config   *config.Config
	Pool     *pgxpool.Pool
	Logger   *slog.Logger
	Registry *prometheus.Registry
	// External overrides the configured generator when non-nil.
	External coaching.Generator
}

// NewHandler wires repositories, services and transport into one handler.
// The returned cleanup stops background workers and must be called once
// the server has stopped.
func NewHandler(ctx context.Context, d Deps) (http.Handler, func(), error) {
	cfg := d.Config
	logger := d.Logger

	// Repositories.
	users := userrepo.New(d.Pool)
	goals := goalrepo.New(d.Pool)
	checkins := checkinrepo.New(d.Pool)
	chats := chatrepo.New(d.Pool)
	templates := templaterepo.New(d.Pool)
	aiMessages := aimessagerepo.New(d.Pool)
	txm := postgres.NewTxManager(d.Pool)

	catalog := coaching.NewCatalog(logger, templates)
	if err := catalog.EnsureDefaults(ctx); err != nil {
		return nil, nil, fmt.Errorf("ensure default templates: %w", err)
	}

	recorder := metrics.NewRecorder(d.Registry)

	external := d.External
	if external == nil {
		external = newGenerator(cfg.Generation, logger)
	}

	coach := coaching.NewService(logger, coaching.Config{
		Provider:          cfg.Generation.Provider,
		MinResponseLength: cfg.Generation.MinResponseLength,
		ExternalFirst:     cfg.Generation.ExternalFirst,
		RecentWindow:      cfg.Coaching.RecentWindow,
		ReminderWindow:    cfg.Coaching.ReminderWindow,
		SentimentWindow:   cfg.Coaching.SentimentWindow,
	}, checkins, chats, catalog, aiMessages, external, recorder)

	// Services.
	userService := user.NewService(logger, users)
	goalService := goal.NewService(logger, goals, users)
	checkinService := checkin.NewService(logger, users, goals, checkins, txm, coach)
	reminderService := reminder.NewService(logger, users, goals, checkins, aiMessages, coach, cfg.Coaching.BatchConcurrency)
	templateService := templatesvc.NewService(logger, templates)
	chatService := chat.NewService(logger, users, chats, coaching.NewAnalyzer(logger))

	h := handlers{
		health:    rest.NewHealthHandler(d.Pool, BuildVersion(), cfg.Generation.Provider),
		users:     rest.NewUserHandler(userService, logger),
		goals:     rest.NewGoalHandler(goalService, logger),
		checkins:  rest.NewCheckInHandler(checkinService, logger),
		reminders: rest.NewReminderHandler(reminderService, logger),
		templates: rest.NewTemplateHandler(templateService, logger),
		chat:      rest.NewChatHandler(chatService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	mux := newRouter(h, limiter.Limit(cfg.RateLimit.GenerationPerMinute), d.Registry)

	// Metrics wraps the mux directly so it sees the matched route pattern.
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(recorder),
	)(mux)

	return handler, limiter.Stop, nil
}

// newGenerator builds the configured external generator, or nil for the
// local provider.
func newGenerator(cfg config.GenerationConfig, logger *slog.Logger) coaching.Generator {
	switch cfg.Provider {
	case config.ProviderHuggingFace:
		return huggingface.NewClient(huggingface.Config{
			URL:         cfg.BaseURL,
			APIKey:      cfg.APIKey,
			MaxLength:   cfg.MaxLength,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	case config.ProviderAnthropic:
		// The inherited inference URL would point the SDK at the wrong host.
		baseURL := cfg.BaseURL
		if baseURL == config.DefaultHuggingFaceURL {
			baseURL = ""
		}
		return anthropic.NewClient(anthropic.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     baseURL,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxLength,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	default:
		return nil
	}
}
