package domain

import (
	"time"

	"github.com/google/uuid"
)

// SentimentLabel classifies the polarity of a text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

func (l SentimentLabel) String() string { return string(l) }

// Channel is a direct conversation between two users. FromUserID is always
// the smaller of the two ids so a pair maps to a single channel.
type Channel struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	FromUserID uuid.UUID `db:"from_user_id"`
	ToUserID   uuid.UUID `db:"to_user_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Message is a chat message. Sentiment is computed once when the message is
// created and is never recomputed.
type Message struct {
	ID             uuid.UUID       `db:"id"`
	ChannelID      uuid.UUID       `db:"channel_id"`
	FromUserID     uuid.UUID       `db:"from_user_id"`
	ToUserID       uuid.UUID       `db:"to_user_id"`
	Body           string          `db:"body"`
	SentimentScore *float64        `db:"sentiment_score"`
	SentimentLabel *SentimentLabel `db:"sentiment_label"`
	CreatedAt      time.Time       `db:"created_at"`
}
