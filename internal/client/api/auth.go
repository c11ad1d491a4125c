package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what the backend returns from login and signup.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token/user pair. The caller is
// responsible for saving the pair into the session store.
func (g *Gateway) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := g.do(ctx, http.MethodPost, "/auth/login", creds, &out)
	return out, err
}

// Signup registers a new account.
func (g *Gateway) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	var out AuthResponse
	err := g.do(ctx, http.MethodPost, "/auth/signup", req, &out)
	return out, err
}

// Users lists every registered user, the current one included.
func (g *Gateway) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := g.do(ctx, http.MethodGet, "/auth/users", nil, &out)
	return out, err
}

// User fetches one profile by id.
func (g *Gateway) User(ctx context.Context, id string) (models.User, error) {
	var out models.User
	err := g.do(ctx, http.MethodGet, "/auth/user/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateBio replaces the logged-in user's bio and returns the updated profile.
func (g *Gateway) UpdateBio(ctx context.Context, bio string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	body := struct {
		Bio string `json:"bio"`
	}{Bio: bio}
	err := g.do(ctx, http.MethodPatch, "/auth/update-bio", body, &out)
	return out.User, err
}
