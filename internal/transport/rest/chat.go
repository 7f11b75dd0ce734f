package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/chat"
)

type chatService interface {
	RequestChannel(ctx context.Context, input chat.RequestChannelInput) (*domain.Channel, error)
	SendMessage(ctx context.Context, input chat.SendMessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context, input chat.ListMessagesInput) ([]domain.Message, error)
}

// ChatHandler serves /channels and /messages.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type requestChannelRequest struct {
	FromUser string `json:"from_user"`
	ToUser   string `json:"to_user"`
}

type sendMessageRequest struct {
	ChannelID string `json:"channel_id"`
	FromUser  string `json:"from_user"`
	ToUser    string `json:"to_user"`
	Message   string `json:"message"`
}

// RequestChannel handles POST /channels.
func (h *ChatHandler) RequestChannel(w http.ResponseWriter, r *http.Request) {
	var req requestChannelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	from, err := parseID("from_user", req.FromUser)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	to, err := parseID("to_user", req.ToUser)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ch, err := h.svc.RequestChannel(r.Context(), chat.RequestChannelInput{FromUserID: from, ToUserID: to})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, channelResponse{ChannelID: ch.ID.String(), ChannelName: ch.Name})
}

// SendMessage handles POST /messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	channelID, err := parseID("channel_id", req.ChannelID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	from, err := parseID("from_user", req.FromUser)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	to, err := parseID("to_user", req.ToUser)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	m, err := h.svc.SendMessage(r.Context(), chat.SendMessageInput{
		ChannelID:  channelID,
		FromUserID: from,
		ToUserID:   to,
		Body:       req.Message,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(m))
}

// ListMessages handles GET /messages?channel_id=&limit=.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	channelID, err := parseID("channel_id", r.URL.Query().Get("channel_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	msgs, err := h.svc.ListMessages(r.Context(), chat.ListMessagesInput{ChannelID: channelID, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageResponse(&msgs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
