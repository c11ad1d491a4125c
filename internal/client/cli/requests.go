package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillbarter/skillbarter/internal/client/services"
)

// listRequests shows both sides of the user's exchange workflow.
func (a *App) listRequests(ctx context.Context) error {
	reqs, err := a.skills.MyRequests(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No skill requests yet.")
		return nil
	}
	sess, _ := a.store.Read()
	for _, r := range reqs {
		role := "requested by you"
		if r.Provider.Is(sess.User) {
			role = fmt.Sprintf("requested by %s", r.Requester.Name)
		}
		fmt.Fprintf(a.out, "%s  %-30s %-9s (%s)\n", r.ID, r.Skill.Title, r.Status, role)
	}
	return nil
}

// acceptRequest is the provider's action on a pending request.
func (a *App) acceptRequest(ctx context.Context, id string) error {
	err := a.skills.Accept(ctx, id)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Request accepted.")
	case errors.Is(err, services.ErrNotProvider):
		fmt.Fprintln(a.out, "Only the provider can accept this request.")
	case errors.Is(err, services.ErrBadTransition):
		fmt.Fprintln(a.out, err.Error())
	default:
		return err
	}
	return nil
}

// completeRequest is the requester's action; it settles the token transfer
// server-side, so wallet and ledger are refetched and shown.
func (a *App) completeRequest(ctx context.Context, id string) error {
	err := a.skills.Complete(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotRequester):
		fmt.Fprintln(a.out, "Only the requester can complete this request.")
		return nil
	case errors.Is(err, services.ErrBadTransition):
		fmt.Fprintln(a.out, err.Error())
		return nil
	default:
		return err
	}

	fmt.Fprintln(a.out, "Exchange completed, transaction processed.")
	wallet, err := a.wallet.Balance(ctx)
	if err != nil {
		return fmt.Errorf("refresh wallet: %w", err)
	}
	fmt.Fprintf(a.out, "New balance: %d tokens\n", wallet.Balance)
	return nil
}
