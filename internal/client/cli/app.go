// Package cli is the interactive SkillBarter client: a REPL whose commands
// are the application's views. Protected views go through the route guard;
// everything else (login, signup, help) is reachable without a session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/config"
	"github.com/skillbarter/skillbarter/internal/client/guard"
	"github.com/skillbarter/skillbarter/internal/client/realtime"
	"github.com/skillbarter/skillbarter/internal/client/services"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// App wires the client together and runs the command loop.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	store   *session.Store
	guard   *guard.Guard
	channel *realtime.Channel
	unread  *realtime.Unread

	auth   services.AuthService
	skills services.SkillService
	wallet services.WalletService
	chat   services.ChatService

	reader *bufio.Reader
	out    io.Writer

	// wantLogin is set by the guard redirect and the gateway's 401 hook;
	// the loop shows the login view before the next prompt.
	wantLogin atomic.Bool

	// contacts caches id → display name for rendering chat senders. Read
	// from the realtime consumer goroutine, hence the mutex.
	contactsMu sync.RWMutex
	contacts   map[string]string

	connected bool
}

// NewApp builds the full dependency graph from configuration.
func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		contacts: make(map[string]string),
		unread:   realtime.NewUnread(),
	}

	a.store = session.NewStore(cfg.SessionFile)
	gw := api.NewGateway(cfg.ServerURL, a.store,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithUnauthorizedHook(func() {
			a.wantLogin.Store(true)
		}),
	)
	a.guard = guard.New(a.store, func() {
		a.wantLogin.Store(true)
	})
	a.channel = realtime.NewChannel(cfg.SocketURL, log)

	a.auth = services.NewAuthService(gw, a.store)
	a.skills = services.NewSkillService(gw, a.store)
	a.wallet = services.NewWalletService(gw, a.store)
	a.chat = services.NewChatService(gw, a.store, a.channel, log)

	return a
}

// Run starts the REPL and blocks until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.channel.Close()
	if _, ok := a.store.Read(); ok {
		a.ensureRealtime(ctx)
	}
	a.Root(ctx)
}

// ensureRealtime connects the shared channel once and registers the current
// identity. Safe to call again after login; reconnecting an already-live
// channel is a no-op.
func (a *App) ensureRealtime(ctx context.Context) {
	sess, ok := a.store.Read()
	if !ok {
		return
	}
	if !a.connected {
		if err := a.channel.Connect(ctx); err != nil {
			a.log.Warn().Err(err).Msg("realtime unavailable, chat delivery degraded")
			return
		}
		a.connected = true
		go a.consumeIncoming(a.channel.Subscribe())
	}
	if err := a.channel.RegisterIdentity(sess.User.ID); err != nil {
		a.log.Warn().Err(err).Msg("realtime identity registration failed")
	}
}

// consumeIncoming is the single app-level reader of the inbound stream. A
// message for the open chat is printed inline; anything else only bumps the
// sender's unread counter.
func (a *App) consumeIncoming(sub *realtime.Subscription) {
	for msg := range sub.C {
		if a.unread.Record(msg) {
			fmt.Fprintf(a.out, "\n%s: %s\n> ", a.displayName(msg.SenderID), msg.Message)
		}
	}
}

// displayName resolves a user id via the contacts cache.
func (a *App) displayName(userID string) string {
	a.contactsMu.RLock()
	defer a.contactsMu.RUnlock()
	if name, ok := a.contacts[userID]; ok {
		return name
	}
	return userID
}

// rememberContact caches a user's display name.
func (a *App) rememberContact(id, name string) {
	if id == "" || name == "" {
		return
	}
	a.contactsMu.Lock()
	a.contacts[id] = name
	a.contactsMu.Unlock()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.Read()
	return ok
}
