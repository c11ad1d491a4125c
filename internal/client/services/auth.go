// Package services contains the application services behind the CLI views:
// authentication, skills and requests, wallet, and chat. Services call the
// backend through api.Client, keep the session store up to date, and apply
// the client-side checks the views rely on.
package services

import (
	"context"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// AuthService defines the account operations behind the login/signup/profile
// views.
//
// Contract:
//   - Login/Signup validate input locally, call the backend, and persist the
//     returned (token, user) pair into the session store in one step.
//   - Logout clears the session; it never calls the backend.
//   - UpdateBio refreshes the stored session profile on success.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, name, email, password string) (models.User, error)
	Logout()
	Current() (session.Session, bool)
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (models.User, error)
	UpdateBio(ctx context.Context, bio string) (models.User, error)
}

type authService struct {
	client   api.Client
	store    *session.Store
	validate *validator.Validate
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store, validate: newValidator()}
}

// newValidator builds the shared validator with the signup password policy:
// at least 8 characters with an upper-case letter, a lower-case letter, a
// digit, and a punctuation/symbol character.
func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 8 {
			return false
		}
		var upper, lower, digit, special bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				special = true
			}
		}
		return upper && lower && digit && special
	})
	return v
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupInput struct {
	Name     string `validate:"required,min=2,max=80"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	in := loginInput{Email: email, Password: password}
	if err := a.validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp, err := a.client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	if err := a.store.Save(resp.Token, resp.User); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return resp.User, nil
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	in := signupInput{Name: name, Email: email, Password: password}
	if err := a.validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp, err := a.client.Signup(ctx, api.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	if err := a.store.Save(resp.Token, resp.User); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return resp.User, nil
}

func (a *authService) Logout() {
	a.store.Clear()
}

func (a *authService) Current() (session.Session, bool) {
	return a.store.Read()
}

func (a *authService) Users(ctx context.Context) ([]models.User, error) {
	return a.client.Users(ctx)
}

func (a *authService) User(ctx context.Context, id string) (models.User, error) {
	return a.client.User(ctx, id)
}

func (a *authService) UpdateBio(ctx context.Context, bio string) (models.User, error) {
	sess, ok := a.store.Read()
	if !ok {
		return models.User{}, ErrNoSession
	}

	user, err := a.client.UpdateBio(ctx, bio)
	if err != nil {
		return models.User{}, err
	}
	if user.ID == "" {
		// Some deployments return only an acknowledgment; patch locally.
		user = sess.User
		user.Bio = bio
	}
	if err := a.store.Save(sess.Token, user); err != nil {
		return models.User{}, fmt.Errorf("refresh session: %w", err)
	}
	return user, nil
}
