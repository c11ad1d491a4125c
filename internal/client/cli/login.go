package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillbarter/skillbarter/internal/client/api"
)

// Login is the login view. Failures are surfaced here per status, matching
// the error taxonomy: 400/401 bad credentials, 404 unknown user.
func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error().Err(err).Msg("reading email")
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error().Err(err).Msg("reading password")
		return
	}

	user, err := a.auth.Login(ctx, email, password)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
		a.ensureRealtime(ctx)
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(a.out, "User not found. Please sign up first.")
	case errors.Is(err, api.ErrValidation), errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Invalid email or password. Please try again.")
	default:
		fmt.Fprintln(a.out, "Login failed:", err)
	}
}

// Signup is the signup view. The password policy is checked locally before
// the request goes out.
func (a *App) Signup(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		a.log.Error().Err(err).Msg("reading name")
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error().Err(err).Msg("reading email")
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error().Err(err).Msg("reading password")
		return
	}

	user, err := a.auth.Signup(ctx, name, email, password)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", user.Name)
		a.ensureRealtime(ctx)
	case errors.Is(err, api.ErrValidation):
		fmt.Fprintln(a.out, "Signup rejected:", err)
	default:
		fmt.Fprintln(a.out, "Signup failed:", err)
	}
}

// Logout clears the session. The realtime connection stays up; the server
// stops routing to it once another identity registers.
func (a *App) Logout() {
	a.auth.Logout()
	fmt.Fprintln(a.out, "Logged out.")
}
