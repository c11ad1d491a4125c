package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillbarter/skillbarter/internal/client/guard"
)

func (a *App) prompt() string {
	if sess, ok := a.store.Read(); ok {
		if n := a.unread.Total(); n > 0 {
			return fmt.Sprintf("skillbarter (%s, %d unread)> ", sess.User.Name, n)
		}
		return fmt.Sprintf("skillbarter (%s)> ", sess.User.Name)
	}
	return "skillbarter> "
}

// Root is the command loop. Each iteration reads one command line, runs the
// matching view, and surfaces its error; a pending login redirect (guard or
// 401) is honored before the next prompt.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SkillBarter (type 'help' for commands)")

	for {
		if a.wantLogin.Swap(false) && !a.isLoggedIn() {
			fmt.Fprintln(a.out, "Please log in to continue.")
			a.Login(ctx)
		}

		fmt.Fprint(a.out, a.prompt())
		line, readErr := a.reader.ReadString('\n')
		if readErr != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			a.help()
		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		case "skills":
			err = a.guard.Protect(ctx, a.listSkills)
		case "skill":
			err = a.protectedArg(ctx, args, "skill <id>", a.showSkill)
		case "offer":
			err = a.guard.Protect(ctx, a.offerSkill)
		case "request":
			err = a.protectedArg(ctx, args, "request <skillId>", a.requestSkill)
		case "requests":
			err = a.guard.Protect(ctx, a.listRequests)
		case "accept":
			err = a.protectedArg(ctx, args, "accept <requestId>", a.acceptRequest)
		case "complete":
			err = a.protectedArg(ctx, args, "complete <requestId>", a.completeRequest)
		case "wallet":
			err = a.guard.Protect(ctx, a.showWallet)
		case "transactions":
			rng := ""
			if len(args) > 0 {
				rng = args[0]
			}
			err = a.guard.Protect(ctx, func(ctx context.Context) error {
				return a.listTransactions(ctx, rng)
			})
		case "users":
			err = a.guard.Protect(ctx, a.listUsers)
		case "profile":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			err = a.guard.Protect(ctx, func(ctx context.Context) error {
				return a.showProfile(ctx, id)
			})
		case "bio":
			err = a.guard.Protect(ctx, a.editBio)
		case "chat":
			err = a.protectedArg(ctx, args, "chat <userId|name>", a.openChat)

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil && !errors.Is(err, guard.ErrLoginRequired) {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}

// protectedArg runs a guarded view that takes one positional argument.
func (a *App) protectedArg(ctx context.Context, args []string, usage string, view func(ctx context.Context, arg string) error) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return nil
	}
	return a.guard.Protect(ctx, func(ctx context.Context) error {
		return view(ctx, args[0])
	})
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Commands: skills, skill <id>, offer, request <skillId>, requests,")
		fmt.Fprintln(a.out, "          accept <id>, complete <id>, wallet, transactions [day|month|year],")
		fmt.Fprintln(a.out, "          users, profile [id], bio, chat <user>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Commands: login, signup, exit")
	}
}
