package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// RequestChannel returns the channel of two users, creating it on first
// request. Argument order does not matter.
func (s *Service) RequestChannel(ctx context.Context, input RequestChannelInput) (*domain.Channel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	first, second := orderedPair(input.FromUserID, input.ToUserID)

	ch, err := s.chat.GetChannelByPair(ctx, first, second)
	if err == nil {
		return ch, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	a, err := s.users.GetByID(ctx, first)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	b, err := s.users.GetByID(ctx, second)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	ch, err = s.chat.CreateChannel(ctx, &domain.Channel{
		ID:         uuid.New(),
		Name:       a.Username + "-" + b.Username,
		FromUserID: first,
		ToUserID:   second,
		CreatedAt:  time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Created concurrently by the other user.
		ch, err = s.chat.GetChannelByPair(ctx, first, second)
	}
	if err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}

	s.log.InfoContext(ctx, "channel created",
		slog.String("channel_id", ch.ID.String()),
		slog.String("name", ch.Name),
	)
	return ch, nil
}
