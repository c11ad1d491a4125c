package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// openChat is the conversation view: load history, mark the chat focused so
// inbound messages print live instead of counting as unread, then read lines
// to send until "/back".
func (a *App) openChat(ctx context.Context, who string) error {
	sess, _ := a.store.Read()

	counterpart, err := a.findCounterpart(ctx, sess.User.ID, who)
	if err != nil {
		return err
	}

	chat, history, err := a.chat.Open(ctx, counterpart.ID)
	if err != nil {
		return err
	}
	a.rememberContact(counterpart.ID, counterpart.Name)
	a.unread.Focus(chat.ID, counterpart.ID)
	defer a.unread.Focus("", "")

	fmt.Fprintf(a.out, "Chat with %s (type /back to leave)\n", counterpart.Name)
	for _, m := range history {
		name := m.Sender.Name
		if name == "" {
			name = a.displayName(m.Sender.ID)
		}
		if m.Sender.Is(sess.User) {
			name = "you"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.CreatedAt.Format("15:04"), name, m.Text)
	}

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == "/back" {
			return nil
		}
		if _, err := a.chat.Send(ctx, chat.ID, counterpart.ID, text); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
}

// findCounterpart resolves a user id or exact name to a user record,
// excluding the logged-in user.
func (a *App) findCounterpart(ctx context.Context, selfID, who string) (models.User, error) {
	users, err := a.auth.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == selfID {
			continue
		}
		if u.ID == who || strings.EqualFold(u.Name, who) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("no user %q", who)
}
