package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/services"
)

// listSkills is the browse view.
func (a *App) listSkills(ctx context.Context) error {
	skills, err := a.skills.List(ctx)
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		fmt.Fprintln(a.out, "No skills offered yet.")
		return nil
	}
	for _, s := range skills {
		owner := s.OfferedBy.Name
		if owner == "" {
			owner = "Anonymous"
		}
		fmt.Fprintf(a.out, "%s  %-30s %4d tokens  by %s\n", s.ID, s.Title, s.Tokens, owner)
	}
	return nil
}

// showSkill is the detail view.
func (a *App) showSkill(ctx context.Context, id string) error {
	s, err := a.skills.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Skill not found.")
			return nil
		}
		return err
	}
	owner := s.OfferedBy.Name
	if owner == "" {
		owner = "Unknown"
	}
	fmt.Fprintf(a.out, "%s\n%s\nOffered by: %s\nTokens: %d\n", s.Title, s.Description, owner, s.Tokens)
	return nil
}

// offerSkill is the offer form.
func (a *App) offerSkill(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Skill title", a.out)
	if err != nil {
		return err
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	tokensText, err := GetSimpleText(a.reader, "Token price", a.out)
	if err != nil {
		return err
	}
	tokens, err := strconv.Atoi(tokensText)
	if err != nil {
		fmt.Fprintln(a.out, "Token price must be a whole number.")
		return nil
	}

	skill, err := a.skills.Offer(ctx, models.NewSkill{Title: title, Description: desc, Tokens: tokens})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Skill added: %s (%d tokens)\n", skill.Title, skill.Tokens)
	return nil
}

// requestSkill triggers the exchange workflow for a skill.
func (a *App) requestSkill(ctx context.Context, skillID string) error {
	_, err := a.skills.Request(ctx, skillID)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Skill request sent.")
	case errors.Is(err, services.ErrOwnSkill):
		fmt.Fprintln(a.out, "You cannot request your own skill.")
	case errors.Is(err, api.ErrConflict):
		fmt.Fprintln(a.out, "You already requested this skill.")
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(a.out, "Skill not found.")
	default:
		return err
	}
	return nil
}
