package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// fakeClient implements api.Client for service unit tests. Return values and
// errors are set per call; Calls records the invocation order.
type fakeClient struct {
	Calls []string

	LoginRet  api.AuthResponse
	LoginErr  error
	SignupRet api.AuthResponse
	SignupErr error

	UsersRet []models.User
	UserRet  models.User
	BioRet   models.User
	BioErr   error

	SkillsRet []models.Skill
	SkillsErr error
	OfferRet  models.Skill
	OfferErr  error

	RequestRet    models.SkillRequest
	RequestErr    error
	MyRequestsRet []models.SkillRequest
	MyRequestsErr error
	AcceptErr     error
	CompleteErr   error

	WalletRet models.Wallet
	WalletErr error
	TxnsRet   []models.Transaction
	TxnsErr   error

	OpenChatRet models.Chat
	OpenChatErr error
	MessagesRet []models.Message
	MessagesErr error
	SendRet     models.Message
	SendErr     error

	LastRequestedSkill string
	LastAccepted       string
	LastCompleted      string
	LastTxnRange       string
	LastChatUser       string
	LastSentText       string
}

func (f *fakeClient) call(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Login(ctx context.Context, creds api.Credentials) (api.AuthResponse, error) {
	f.call("login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, req api.SignupRequest) (api.AuthResponse, error) {
	f.call("signup")
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Users(ctx context.Context) ([]models.User, error) {
	f.call("users")
	return f.UsersRet, nil
}

func (f *fakeClient) User(ctx context.Context, id string) (models.User, error) {
	f.call("user")
	return f.UserRet, nil
}

func (f *fakeClient) UpdateBio(ctx context.Context, bio string) (models.User, error) {
	f.call("updateBio")
	return f.BioRet, f.BioErr
}

func (f *fakeClient) Skills(ctx context.Context) ([]models.Skill, error) {
	f.call("skills")
	return f.SkillsRet, f.SkillsErr
}

func (f *fakeClient) OfferSkill(ctx context.Context, offer models.NewSkill) (models.Skill, error) {
	f.call("offerSkill")
	return f.OfferRet, f.OfferErr
}

func (f *fakeClient) RequestSkill(ctx context.Context, skillID string) (models.SkillRequest, error) {
	f.call("requestSkill")
	f.LastRequestedSkill = skillID
	return f.RequestRet, f.RequestErr
}

func (f *fakeClient) AcceptRequest(ctx context.Context, requestID string) error {
	f.call("acceptRequest")
	f.LastAccepted = requestID
	return f.AcceptErr
}

func (f *fakeClient) CompleteRequest(ctx context.Context, requestID string) error {
	f.call("completeRequest")
	f.LastCompleted = requestID
	return f.CompleteErr
}

func (f *fakeClient) MyRequests(ctx context.Context) ([]models.SkillRequest, error) {
	f.call("myRequests")
	return f.MyRequestsRet, f.MyRequestsErr
}

func (f *fakeClient) Wallet(ctx context.Context) (models.Wallet, error) {
	f.call("wallet")
	return f.WalletRet, f.WalletErr
}

func (f *fakeClient) MyTransactions(ctx context.Context, rng string) ([]models.Transaction, error) {
	f.call("myTransactions")
	f.LastTxnRange = rng
	return f.TxnsRet, f.TxnsErr
}

func (f *fakeClient) OpenChat(ctx context.Context, userID string) (models.Chat, error) {
	f.call("openChat")
	f.LastChatUser = userID
	return f.OpenChatRet, f.OpenChatErr
}

func (f *fakeClient) ChatMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	f.call("chatMessages")
	return f.MessagesRet, f.MessagesErr
}

func (f *fakeClient) SendChatMessage(ctx context.Context, chatID, text string) (models.Message, error) {
	f.call("sendChatMessage")
	f.LastSentText = text
	return f.SendRet, f.SendErr
}

var _ api.Client = (*fakeClient)(nil)

// ---- shared helpers ----

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func loggedInStore(t *testing.T, user models.User) *session.Store {
	t.Helper()
	store := newStore(t)
	require.NoError(t, store.Save("tok", user))
	return store
}

func alice() models.User {
	return models.User{ID: "u-alice", Name: "Alice", Email: "a@x.com"}
}

func bob() models.User {
	return models.User{ID: "u-bob", Name: "Bob", Email: "b@x.com"}
}
