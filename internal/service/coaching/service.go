// Package coaching turns a user's goal history into short coaching
// messages. External text generation is attempted when configured and any
// failure or unusable output falls back to a local keyword generator, so a
// message is always produced.
package coaching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// ErrGenerationFailed wraps every failure of the external generator.
var ErrGenerationFailed = errors.New("generation failed")

// Generation kinds and outcomes, used as log fields and metric labels.
const (
	KindReminder     = "reminder"
	KindMotivational = "motivational"

	OutcomeExternal       = "external"
	OutcomeLocal          = "local"
	OutcomeExternalFailed = "external_failed"
	OutcomeLowQuality     = "low_quality"
	OutcomeFallback       = "fallback"
)

// DefaultMinResponseLength is the quality gate threshold in runes.
const DefaultMinResponseLength = 5

type historyStore interface {
	ExistsOnDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (bool, error)
	ListRecent(ctx context.Context, userID, goalID uuid.UUID, limit int) ([]domain.CheckIn, error)
}

type sentimentStore interface {
	RecentSentimentScores(ctx context.Context, userID uuid.UUID, limit int) ([]float64, error)
}

type templateResolver interface {
	Resolve(ctx context.Context, name string) (*domain.PromptTemplate, error)
}

type aiMessageRepo interface {
	Create(ctx context.Context, m *domain.AIMessage) (*domain.AIMessage, error)
}

type metricsRecorder interface {
	ObserveGeneration(kind, source, outcome string)
	ObserveExternalDuration(provider string, d time.Duration)
}

// Generator calls a remote text-generation capability. One attempt per call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config tunes the orchestrator.
type Config struct {
	// Provider names the external generator for logs and metrics.
	Provider string
	// MinResponseLength is the quality gate: shorter external responses are discarded.
	MinResponseLength int
	// ExternalFirst makes motivational messages try the external generator.
	ExternalFirst bool
	// RecentWindow, ReminderWindow and SentimentWindow bound history reads.
	RecentWindow    int
	ReminderWindow  int
	SentimentWindow int
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Service is the message orchestrator.
type Service struct {
	cfg       Config
	history   historyStore
	context   *ContextBuilder
	templates templateResolver
	messages  aiMessageRepo
	external  Generator
	local     *LocalGenerator
	metrics   metricsRecorder
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates the orchestrator. A nil external generator means all
// text comes from the local generator; a nil metrics recorder disables metrics.
func NewService(
	log *slog.Logger,
	cfg Config,
	history historyStore,
	sentiment sentimentStore,
	templates templateResolver,
	messages aiMessageRepo,
	external Generator,
	metrics metricsRecorder,
) *Service {
	if cfg.MinResponseLength < 0 {
		cfg.MinResponseLength = DefaultMinResponseLength
	}
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = 7
	}
	if cfg.ReminderWindow <= 0 {
		cfg.ReminderWindow = 3
	}
	if cfg.SentimentWindow <= 0 {
		cfg.SentimentWindow = 10
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		cfg:       cfg,
		history:   history,
		context:   NewContextBuilder(history, sentiment, cfg.RecentWindow, cfg.SentimentWindow),
		templates: templates,
		messages:  messages,
		external:  external,
		local:     NewLocalGenerator(),
		metrics:   metrics,
		now:       now,
		log:       log.With("service", "coaching"),
	}
}

// Today returns the user's current calendar date as UTC midnight.
func (s *Service) Today(user *domain.User) time.Time {
	return domain.DateIn(s.now(), user.Location())
}

// produce runs one generation attempt: external when allowed, then the
// quality gate, then the local fallback.
func (s *Service) produce(ctx context.Context, kind, prompt string, tryExternal bool) (string, domain.GenerationSource) {
	if !tryExternal || s.external == nil {
		s.metrics.ObserveGeneration(kind, string(domain.GenerationSourceLocal), OutcomeLocal)
		return s.local.GenerateLocal(prompt), domain.GenerationSourceLocal
	}

	start := time.Now()
	text, err := s.external.Generate(ctx, prompt)
	s.metrics.ObserveExternalDuration(s.cfg.Provider, time.Since(start))

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		s.log.WarnContext(ctx, "external generation failed, using local fallback",
			slog.String("kind", kind),
			slog.String("provider", s.cfg.Provider),
			slog.String("error", err.Error()),
		)
		s.metrics.ObserveGeneration(kind, string(domain.GenerationSourceLocal), OutcomeExternalFailed)
		return s.local.GenerateLocal(prompt), domain.GenerationSourceLocal
	}

	text = strings.TrimSpace(text)
	if !s.passesQualityGate(text) {
		s.log.WarnContext(ctx, "external response below quality threshold, using local fallback",
			slog.String("kind", kind),
			slog.String("provider", s.cfg.Provider),
			slog.Int("length", utf8.RuneCountInString(text)),
			slog.Int("min_length", s.cfg.MinResponseLength),
		)
		s.metrics.ObserveGeneration(kind, string(domain.GenerationSourceLocal), OutcomeLowQuality)
		return s.local.GenerateLocal(prompt), domain.GenerationSourceLocal
	}

	s.metrics.ObserveGeneration(kind, string(domain.GenerationSourceExternal), OutcomeExternal)
	return text, domain.GenerationSourceExternal
}

// passesQualityGate reports whether a trimmed external response is long enough.
func (s *Service) passesQualityGate(text string) bool {
	return text != "" && utf8.RuneCountInString(text) >= s.cfg.MinResponseLength
}

// recoverTo turns a panic on a generation path into the fallback text.
func (s *Service) recoverTo(ctx context.Context, kind string, text *string, fallback func() string) {
	r := recover()
	if r == nil {
		return
	}
	s.log.ErrorContext(ctx, "generation panicked, returning fallback",
		slog.String("kind", kind),
		slog.Any("panic", r),
	)
	s.metrics.ObserveGeneration(kind, "none", OutcomeFallback)
	*text = fallback()
}

type nopMetrics struct{}

func (nopMetrics) ObserveGeneration(string, string, string)      {}
func (nopMetrics) ObserveExternalDuration(string, time.Duration) {}
