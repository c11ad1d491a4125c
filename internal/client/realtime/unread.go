package realtime

import "sync"

// Unread keeps the per-counterpart unread counters: a message arriving for a
// chat that is not the focused one bumps its sender's counter; focusing that
// chat resets it. Purely a display aggregate — it is not persisted and a
// restart loses it.
type Unread struct {
	mu      sync.Mutex
	focused string
	counts  map[string]int
}

// NewUnread creates an empty tracker with no focused chat.
func NewUnread() *Unread {
	return &Unread{counts: make(map[string]int)}
}

// Focus marks chatID as the open conversation and clears the counterpart's
// counter. An empty chatID means no conversation is open.
func (u *Unread) Focus(chatID, counterpartID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focused = chatID
	if counterpartID != "" {
		delete(u.counts, counterpartID)
	}
}

// Record accounts for one inbound message and reports whether it belongs to
// the focused chat. Messages for other chats increment their sender's counter
// by exactly one.
func (u *Unread) Record(msg Incoming) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.focused != "" && msg.ChatID == u.focused {
		return true
	}
	u.counts[msg.SenderID]++
	return false
}

// Count returns the unread counter for one counterpart.
func (u *Unread) Count(counterpartID string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[counterpartID]
}

// Total sums every counterpart's counter.
func (u *Unread) Total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := 0
	for _, n := range u.counts {
		total += n
	}
	return total
}
