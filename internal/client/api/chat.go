package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// OpenChat returns the conversation between the logged-in user and userID,
// creating it server-side if none exists yet.
func (g *Gateway) OpenChat(ctx context.Context, userID string) (models.Chat, error) {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID}
	var out models.Chat
	err := g.do(ctx, http.MethodPost, "/chat", body, &out)
	return out, err
}

// ChatMessages fetches the persisted history of one conversation.
func (g *Gateway) ChatMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	var out []models.Message
	err := g.do(ctx, http.MethodGet, "/chat/"+url.PathEscape(chatID), nil, &out)
	return out, err
}

// SendChatMessage persists one outgoing message and returns the stored record
// (with its server-assigned id and timestamp).
func (g *Gateway) SendChatMessage(ctx context.Context, chatID, text string) (models.Message, error) {
	body := struct {
		ChatID string `json:"chatId"`
		Text   string `json:"text"`
	}{ChatID: chatID, Text: text}
	var out models.Message
	err := g.do(ctx, http.MethodPost, "/chat/send", body, &out)
	return out, err
}
