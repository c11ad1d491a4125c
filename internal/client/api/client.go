package api

import (
	"context"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// Client is the backend surface the services build on. *Gateway is the real
// implementation; tests substitute fakes.
type Client interface {
	Login(ctx context.Context, creds Credentials) (AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (models.User, error)
	UpdateBio(ctx context.Context, bio string) (models.User, error)

	Skills(ctx context.Context) ([]models.Skill, error)
	OfferSkill(ctx context.Context, offer models.NewSkill) (models.Skill, error)
	RequestSkill(ctx context.Context, skillID string) (models.SkillRequest, error)
	AcceptRequest(ctx context.Context, requestID string) error
	CompleteRequest(ctx context.Context, requestID string) error
	MyRequests(ctx context.Context) ([]models.SkillRequest, error)

	Wallet(ctx context.Context) (models.Wallet, error)
	MyTransactions(ctx context.Context, rng string) ([]models.Transaction, error)

	OpenChat(ctx context.Context, userID string) (models.Chat, error)
	ChatMessages(ctx context.Context, chatID string) ([]models.Message, error)
	SendChatMessage(ctx context.Context, chatID, text string) (models.Message, error)
}

var _ Client = (*Gateway)(nil)
