// Package chat implements channel and message persistence using PostgreSQL.
package chat

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const (
	channelsTable = "channels"
	messagesTable = "messages"
)

var (
	channelColumns = []string{"id", "name", "from_user_id", "to_user_id", "created_at"}
	messageColumns = []string{
		"id", "channel_id", "from_user_id", "to_user_id", "body",
		"sentiment_score", "sentiment_label", "created_at",
	}
)

// Repo provides channel and message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chat repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Channels
// ---------------------------------------------------------------------------

// CreateChannel inserts a channel. The caller orders the user pair.
func (r *Repo) CreateChannel(ctx context.Context, ch *domain.Channel) (*domain.Channel, error) {
	query := postgres.Builder().
		Insert(channelsTable).
		Columns(channelColumns...).
		Values(ch.ID, ch.Name, ch.FromUserID, ch.ToUserID, ch.CreatedAt).
		Suffix(postgres.Returning(channelColumns))

	row, err := postgres.Get[domain.Channel](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "channel", ch.Name)
	}
	return row, nil
}

// GetChannel returns a channel by id.
func (r *Repo) GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	query := postgres.Builder().
		Select(channelColumns...).
		From(channelsTable).
		Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[domain.Channel](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "channel", id)
	}
	return row, nil
}

// GetChannelByPair returns the channel of an already ordered user pair.
func (r *Repo) GetChannelByPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*domain.Channel, error) {
	query := postgres.Builder().
		Select(channelColumns...).
		From(channelsTable).
		Where(squirrel.Eq{"from_user_id": fromUserID, "to_user_id": toUserID})

	row, err := postgres.Get[domain.Channel](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "channel", fromUserID.String()+"/"+toUserID.String())
	}
	return row, nil
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// CreateMessage inserts a message together with its sentiment.
func (r *Repo) CreateMessage(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	var label *string
	if m.SentimentLabel != nil {
		s := string(*m.SentimentLabel)
		label = &s
	}

	query := postgres.Builder().
		Insert(messagesTable).
		Columns(messageColumns...).
		Values(m.ID, m.ChannelID, m.FromUserID, m.ToUserID, m.Body, m.SentimentScore, label, m.CreatedAt).
		Suffix(postgres.Returning(messageColumns))

	row, err := postgres.Get[domain.Message](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}
	return row, nil
}

// ListMessages returns a channel's messages, oldest first.
func (r *Repo) ListMessages(ctx context.Context, channelID uuid.UUID, limit int) ([]domain.Message, error) {
	query := postgres.Builder().
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"channel_id": channelID}).
		OrderBy("created_at ASC", "id ASC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := postgres.Select[domain.Message](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "messages of channel", channelID)
	}
	return rows, nil
}

// RecentSentimentScores returns the non-NULL sentiment scores among the
// last limit messages sent by the user across all channels.
func (r *Repo) RecentSentimentScores(ctx context.Context, userID uuid.UUID, limit int) ([]float64, error) {
	recent := postgres.Builder().
		Select("sentiment_score").
		From(messagesTable).
		Where(squirrel.Eq{"from_user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	query := postgres.Builder().
		Select("sentiment_score").
		FromSelect(recent, "recent").
		Where(squirrel.NotEq{"sentiment_score": nil})

	rows, err := postgres.Select[float64](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "sentiment of user", userID)
	}
	return rows, nil
}
