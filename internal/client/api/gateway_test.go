package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestGateway_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	require.NoError(t, store.Save("opaque", models.User{ID: "u1", Email: "a@x.com"}))
	g := NewGateway(srv.URL, store)

	_, err := g.Skills(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestGateway_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, newTestStore(t))

	// The request is not blocked for lacking a token.
	_, err := g.Skills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGateway_UnauthorizedClearsSessionAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t)
	require.NoError(t, store.Save("stale", models.User{ID: "u1"}))

	redirected := false
	g := NewGateway(srv.URL, store, WithUnauthorizedHook(func() { redirected = true }))

	_, err := g.Wallet(context.Background())

	// All three effects: session cleared, redirect fired, caller sees the error.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, redirected)
	_, ok := store.Read()
	assert.False(t, ok)
}

func TestGateway_StatusTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{400, ErrValidation},
		{404, ErrNotFound},
		{409, ErrConflict},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"nope"}`))
		}))

		g := NewGateway(srv.URL, newTestStore(t))
		_, err := g.Skills(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, tc.status, se.Status)
		assert.Equal(t, "nope", se.Message)

		srv.Close()
	}
}

func TestGateway_ServerErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, newTestStore(t))
	_, err := g.Skills(context.Background())

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 500, se.Status)
	// 500 maps to no sentinel.
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestGateway_LoginThenAuthenticatedCall(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@x.com", creds.Email)
		assert.Equal(t, "Secret1!", creds.Password)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "opaque",
			User:  models.User{ID: "u1", Name: "Alice", Email: "a@x.com"},
		})
	})
	mux.HandleFunc("GET /wallet", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Wallet{Balance: 100})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newTestStore(t)
	g := NewGateway(srv.URL, store)

	resp, err := g.Login(context.Background(), Credentials{Email: "a@x.com", Password: "Secret1!"})
	require.NoError(t, err)
	require.NoError(t, store.Save(resp.Token, resp.User))

	sess, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "opaque", sess.Token)
	assert.Equal(t, "Alice", sess.User.Name)

	wallet, err := g.Wallet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, wallet.Balance)
	assert.Equal(t, "Bearer opaque", gotAuth)
}

func TestGateway_TransactionsRangeQuery(t *testing.T) {
	var gotRange string
	var hadRange bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("range")
		hadRange = r.URL.Query().Has("range")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, newTestStore(t))

	_, err := g.MyTransactions(context.Background(), "month")
	require.NoError(t, err)
	assert.Equal(t, "month", gotRange)

	_, err = g.MyTransactions(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, hadRange)
}

func TestGateway_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	g := NewGateway(srv.URL, newTestStore(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Skills(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
