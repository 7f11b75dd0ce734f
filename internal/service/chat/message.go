package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// SendMessage stores a message between the two members of a channel,
// together with its sentiment.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ch, err := s.chat.GetChannel(ctx, input.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	first, second := orderedPair(input.FromUserID, input.ToUserID)
	if first != ch.FromUserID || second != ch.ToUserID {
		return nil, domain.NewValidationError("channel_id", "users are not the members of this channel")
	}

	body := strings.TrimSpace(input.Body)
	sentiment := s.analyzer.Analyze(body)
	score := sentiment.Score
	label := sentiment.Label

	m, err := s.chat.CreateMessage(ctx, &domain.Message{
		ID:             uuid.New(),
		ChannelID:      ch.ID,
		FromUserID:     input.FromUserID,
		ToUserID:       input.ToUserID,
		Body:           body,
		SentimentScore: &score,
		SentimentLabel: &label,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("channel_id", ch.ID.String()),
		slog.String("message_id", m.ID.String()),
		slog.String("sentiment", label.String()),
	)
	return m, nil
}

// ListMessages returns a channel's messages, oldest first.
func (s *Service) ListMessages(ctx context.Context, input ListMessagesInput) ([]domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.chat.GetChannel(ctx, input.ChannelID); err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	msgs, err := s.chat.ListMessages(ctx, input.ChannelID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
