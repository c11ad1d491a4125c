package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/realtime"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// ChatService defines the conversation workflow behind the chat view: open a
// conversation (create-or-fetch then load history, strictly in that order) and
// send messages (persist over REST, then emit on the realtime channel without
// waiting for delivery).
type ChatService interface {
	Open(ctx context.Context, counterpartID string) (models.Chat, []models.Message, error)
	Send(ctx context.Context, chatID, counterpartID, text string) (models.Message, error)
}

type chatService struct {
	client  api.Client
	store   *session.Store
	channel *realtime.Channel
	log     zerolog.Logger
}

// NewChatService constructs a ChatService bound to the given API client,
// session store, and realtime channel.
func NewChatService(client api.Client, store *session.Store, channel *realtime.Channel, log zerolog.Logger) ChatService {
	return &chatService{client: client, store: store, channel: channel, log: log}
}

// Open creates or fetches the conversation with counterpartID, then loads its
// history. The two calls are dependent and must stay sequential.
func (c *chatService) Open(ctx context.Context, counterpartID string) (models.Chat, []models.Message, error) {
	chat, err := c.client.OpenChat(ctx, counterpartID)
	if err != nil {
		return models.Chat{}, nil, fmt.Errorf("open chat: %w", err)
	}
	msgs, err := c.client.ChatMessages(ctx, chat.ID)
	if err != nil {
		return models.Chat{}, nil, fmt.Errorf("load chat history: %w", err)
	}
	return chat, msgs, nil
}

// Send persists the message, then emits it on the realtime channel so the
// counterpart's open connection sees it immediately. The emission is
// fire-and-forget: an unavailable channel does not undo the persisted send.
func (c *chatService) Send(ctx context.Context, chatID, counterpartID, text string) (models.Message, error) {
	sess, ok := c.store.Read()
	if !ok {
		return models.Message{}, ErrNoSession
	}

	msg, err := c.client.SendChatMessage(ctx, chatID, text)
	if err != nil {
		return models.Message{}, err
	}

	wireID := msg.ID
	if wireID == "" {
		wireID = uuid.NewString()
	}
	if err := c.channel.Send(realtime.Outgoing{
		ID:         wireID,
		ChatID:     chatID,
		SenderID:   sess.User.ID,
		ReceiverID: counterpartID,
		Message:    text,
	}); err != nil {
		// Persisted but not pushed; the counterpart catches up on next load.
		c.log.Warn().Err(err).Str("chatId", chatID).Msg("realtime emit failed")
	}
	return msg, nil
}
