package cli

import (
	"context"
	"fmt"
)

// listUsers shows everyone except the logged-in user, with unread badges.
// Names seen here feed the contact cache used by the chat view.
func (a *App) listUsers(ctx context.Context) error {
	sess, _ := a.store.Read()
	users, err := a.auth.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == sess.User.ID {
			continue
		}
		a.rememberContact(u.ID, u.Name)
		badge := ""
		if n := a.unread.Count(u.ID); n > 0 {
			badge = fmt.Sprintf("  [%d unread]", n)
		}
		fmt.Fprintf(a.out, "%s  %-24s %s%s\n", u.ID, u.Name, u.Email, badge)
	}
	return nil
}

// showProfile renders a user profile; with no id it shows the logged-in user
// from the session store, with an id it fetches that user and their offers.
func (a *App) showProfile(ctx context.Context, id string) error {
	if id == "" {
		sess, _ := a.store.Read()
		u := sess.User
		fmt.Fprintf(a.out, "%s\n%s\nBio: %s\n", u.Name, u.Email, u.Bio)
		return nil
	}

	u, err := a.auth.User(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n%s\nBio: %s\n", u.Name, u.Email, u.Bio)

	skills, err := a.skills.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range skills {
		if s.OfferedBy.ID == id {
			fmt.Fprintf(a.out, "  offers: %s (%d tokens)\n", s.Title, s.Tokens)
		}
	}
	return nil
}

// editBio is the bio form on the profile view.
func (a *App) editBio(ctx context.Context) error {
	bio, err := GetMultiline(a.reader, "Enter your bio", a.out)
	if err != nil {
		return err
	}
	if _, err := a.auth.UpdateBio(ctx, bio); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Bio updated.")
	return nil
}
