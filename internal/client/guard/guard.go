// Package guard gates protected views on the presence of a session. The check
// runs before the view body, so an unauthenticated user never triggers a
// protected view's fetches or side effects.
package guard

import (
	"context"
	"errors"

	"github.com/skillbarter/skillbarter/internal/client/session"
)

// ErrLoginRequired is returned when a protected view is entered without a
// session. The caller has already been redirected by the time it sees this.
var ErrLoginRequired = errors.New("login required")

// View is a protected unit of work: a command handler in the CLI, the
// equivalent of one routed page.
type View func(ctx context.Context) error

// Guard checks the session store before letting a protected view run.
// The token is not validated client-side; a stale token passes here and is
// caught by the gateway's 401 handling on the first call.
type Guard struct {
	store    *session.Store
	redirect func()
}

// New creates a Guard. redirect is invoked instead of the view when no
// session is present (the CLI switches to the login prompt).
func New(store *session.Store, redirect func()) *Guard {
	return &Guard{store: store, redirect: redirect}
}

// Allow reports whether a session is present.
func (g *Guard) Allow() bool {
	_, ok := g.store.Read()
	return ok
}

// Protect runs view only when a session is present; otherwise it redirects
// and returns ErrLoginRequired without ever invoking view.
func (g *Guard) Protect(ctx context.Context, view View) error {
	if !g.Allow() {
		if g.redirect != nil {
			g.redirect()
		}
		return ErrLoginRequired
	}
	return view(ctx)
}
