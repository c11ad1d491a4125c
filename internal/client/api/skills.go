package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// Skills lists all offered skills.
func (g *Gateway) Skills(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	err := g.do(ctx, http.MethodGet, "/skills", nil, &out)
	return out, err
}

// OfferSkill publishes a new skill offer and returns the created record.
func (g *Gateway) OfferSkill(ctx context.Context, offer models.NewSkill) (models.Skill, error) {
	var out struct {
		Skill models.Skill `json:"skill"`
	}
	err := g.do(ctx, http.MethodPost, "/skills/offer", offer, &out)
	return out.Skill, err
}

// RequestSkill asks the skill's owner for an exchange. Duplicate requests
// come back as ErrConflict.
func (g *Gateway) RequestSkill(ctx context.Context, skillID string) (models.SkillRequest, error) {
	var out models.SkillRequest
	err := g.do(ctx, http.MethodPost, "/skills/request/"+url.PathEscape(skillID), nil, &out)
	return out, err
}

// AcceptRequest moves a request from Pending to Accepted (provider action).
func (g *Gateway) AcceptRequest(ctx context.Context, requestID string) error {
	return g.do(ctx, http.MethodPatch, "/skills/request/"+url.PathEscape(requestID)+"/accept", nil, nil)
}

// CompleteRequest moves a request from Accepted to Completed (requester
// action); the backend settles the token transfer as a side effect.
func (g *Gateway) CompleteRequest(ctx context.Context, requestID string) error {
	return g.do(ctx, http.MethodPatch, "/skills/request/"+url.PathEscape(requestID)+"/complete", nil, nil)
}

// MyRequests lists requests where the logged-in user is requester or provider.
func (g *Gateway) MyRequests(ctx context.Context) ([]models.SkillRequest, error) {
	var out []models.SkillRequest
	err := g.do(ctx, http.MethodGet, "/skills/requests/my", nil, &out)
	return out, err
}
