// Package chat manages direct channels between two users and the messages
// sent in them. Each message is scored for sentiment once, on creation.
package chat

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type chatRepo interface {
	CreateChannel(ctx context.Context, ch *domain.Channel) (*domain.Channel, error)
	GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	GetChannelByPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*domain.Channel, error)
	CreateMessage(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListMessages(ctx context.Context, channelID uuid.UUID, limit int) ([]domain.Message, error)
}

type sentimentAnalyzer interface {
	Analyze(text string) coaching.SentimentResult
}

// Service provides channel and message operations.
type Service struct {
	users    userRepo
	chat     chatRepo
	analyzer sentimentAnalyzer
	log      *slog.Logger
}

// NewService creates a new Chat service.
func NewService(log *slog.Logger, users userRepo, chat chatRepo, analyzer sentimentAnalyzer) *Service {
	return &Service{
		users:    users,
		chat:     chat,
		analyzer: analyzer,
		log:      log.With("service", "chat"),
	}
}

// orderedPair returns the two ids smallest first, so that a pair of users
// maps to one channel regardless of who asks.
func orderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}
