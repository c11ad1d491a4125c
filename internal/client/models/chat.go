package models

import "time"

// Chat is a conversation keyed by a pair of users. The backend creates one on
// demand via POST /chat.
type Chat struct {
	ID           string    `json:"_id"`
	Participants []UserRef `json:"participants,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Message is one chat message. ID may be empty for messages synthesized from
// realtime events; persisted messages always carry one.
type Message struct {
	ID        string    `json:"_id,omitempty"`
	ChatID    string    `json:"chatId,omitempty"`
	Text      string    `json:"text"`
	Sender    UserRef   `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}
