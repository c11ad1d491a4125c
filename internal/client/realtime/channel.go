// Package realtime maintains the single long-lived chat connection. Frames
// are JSON envelopes {event, data} carrying three events: registerUser
// (outbound identity), sendMessage (outbound), receiveMessage (inbound).
//
// Delivery is best-effort: ordering across chats is not guaranteed and the
// server may redeliver, so inbound frames are deduplicated by message id when
// one is present. There is no reconnect; a dropped connection surfaces to
// subscribers as a closed stream.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	eventRegister = "registerUser"
	eventSend     = "sendMessage"
	eventReceive  = "receiveMessage"
)

// ErrNotConnected is returned by operations that need a live connection.
var ErrNotConnected = errors.New("realtime channel not connected")

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing is the payload of a sendMessage event.
type Outgoing struct {
	ID         string `json:"messageId,omitempty"`
	ChatID     string `json:"chatId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// Incoming is the payload of a receiveMessage event.
type Incoming struct {
	ID       string `json:"messageId,omitempty"`
	ChatID   string `json:"chatId"`
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
}

// Channel is one websocket connection shared by every chat view in the
// process. It is owned by the application root and injected; nothing in this
// package connects as a module side effect.
type Channel struct {
	url string
	log zerolog.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	subs    map[int]*Subscription
	nextSub int
	seen    map[string]struct{}
	closed  bool
}

// NewChannel creates an unconnected channel for the given ws:// URL.
func NewChannel(url string, log zerolog.Logger) *Channel {
	return &Channel{
		url:  url,
		subs: make(map[int]*Subscription),
		seen: make(map[string]struct{}),
		log:  log,
	}
}

// Connect dials the server and starts the read loop. Calling Connect on an
// already-connected channel is an error; there is exactly one connection per
// process.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return errors.New("realtime channel already connected")
	}
	if c.closed {
		return ErrNotConnected
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.conn = conn
	go c.readLoop(conn)
	return nil
}

// RegisterIdentity announces the logged-in user's id so the server can route
// messages to this connection. Call it as soon as the identity is known.
func (c *Channel) RegisterIdentity(userID string) error {
	return c.emit(eventRegister, userID)
}

// Send emits one sendMessage event. Fire-and-forget: no acknowledgment is
// awaited and the caller appends optimistically.
func (c *Channel) Send(msg Outgoing) error {
	return c.emit(eventSend, msg)
}

func (c *Channel) emit(event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.closed {
		return ErrNotConnected
	}
	if err := c.conn.WriteJSON(envelope{Event: event, Data: raw}); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	return nil
}

// Subscribe returns a stream of inbound messages. Each subscriber must call
// Close when its view goes away so no update is delivered after teardown.
func (c *Channel) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := &Subscription{
		C:  make(chan Incoming, 64),
		id: c.nextSub,
		ch: c,
	}
	c.nextSub++
	if c.closed {
		close(sub.C)
		return sub
	}
	c.subs[sub.id] = sub
	return sub
}

// Close tears the connection down and closes every open subscription stream.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for id, sub := range c.subs {
		close(sub.C)
		delete(c.subs, id)
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

func (c *Channel) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.log.Debug().Err(err).Msg("realtime read loop ended")
			c.Close()
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Warn().Err(err).Msg("dropping malformed realtime frame")
			continue
		}
		if env.Event != eventReceive {
			continue
		}

		var msg Incoming
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			c.log.Warn().Err(err).Msg("dropping malformed receiveMessage payload")
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Channel) dispatch(msg Incoming) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if msg.ID != "" {
		if _, dup := c.seen[msg.ID]; dup {
			c.log.Debug().Str("messageId", msg.ID).Msg("dropping duplicate message")
			return
		}
		// Bounded memory: redelivery happens close to the original, so a
		// periodic reset is enough.
		if len(c.seen) > 4096 {
			c.seen = make(map[string]struct{})
		}
		c.seen[msg.ID] = struct{}{}
	}

	for _, sub := range c.subs {
		select {
		case sub.C <- msg:
		default:
			c.log.Warn().Int("sub", sub.id).Msg("slow realtime subscriber, dropping message")
		}
	}
}

// Subscription is one view's inbound stream. C is closed by Subscription.Close
// and by Channel.Close.
type Subscription struct {
	C chan Incoming

	id   int
	ch   *Channel
	once sync.Once
}

// Close detaches the subscription. Safe to call more than once and safe to
// race with channel shutdown.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.ch.mu.Lock()
		defer s.ch.mu.Unlock()
		if _, ok := s.ch.subs[s.id]; ok {
			delete(s.ch.subs, s.id)
			close(s.C)
		}
	})
}
