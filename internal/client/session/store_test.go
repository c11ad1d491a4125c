package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStore(path), path
}

func testUser() models.User {
	return models.User{ID: "u1", Name: "Alice", Email: "a@x.com", Wallet: 100}
}

func TestStore_SaveThenRead(t *testing.T) {
	store, _ := tempStore(t)

	require.NoError(t, store.Save("opaque-token", testUser()))

	sess, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "opaque-token", sess.Token)
	assert.Equal(t, testUser(), sess.User)
}

func TestStore_SurvivesRestart(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.Save("tok", testUser()))

	// A fresh store over the same file sees the same pair.
	reopened := NewStore(path)
	sess, ok := reopened.Read()
	require.True(t, ok)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "a@x.com", sess.User.Email)
}

func TestStore_ClearThenRead(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.Save("tok", testUser()))

	store.Clear()

	_, ok := store.Read()
	assert.False(t, ok)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clear of an already-absent session is a no-op.
	store.Clear()
	_, ok = store.Read()
	assert.False(t, ok)
}

func TestStore_ReadMissingFile(t *testing.T) {
	store, _ := tempStore(t)
	sess, ok := store.Read()
	assert.False(t, ok)
	assert.Empty(t, sess.Token)
}

func TestStore_ReadCorruptFile(t *testing.T) {
	cases := map[string]string{
		"not json":      `{{{`,
		"empty":         ``,
		"missing token": `{"user":{"_id":"u1"}}`,
		"missing user":  `{"token":"tok"}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			store, path := tempStore(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			assert.NotPanics(t, func() {
				_, ok := store.Read()
				assert.False(t, ok)
			})
		})
	}
}

func TestStore_TokenHelper(t *testing.T) {
	store, _ := tempStore(t)
	assert.Empty(t, store.Token())

	require.NoError(t, store.Save("tok", testUser()))
	assert.Equal(t, "tok", store.Token())
}

func TestStore_SubscribeNotifies(t *testing.T) {
	store, _ := tempStore(t)

	var events []bool
	store.Subscribe(func(_ Session, present bool) {
		events = append(events, present)
	})

	require.NoError(t, store.Save("tok", testUser()))
	store.Clear()
	store.Clear() // no state change, no event

	assert.Equal(t, []bool{true, false}, events)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := tempStore(t)
	require.NoError(t, store.Save("tok1", testUser()))

	other := models.User{ID: "u2", Name: "Bob", Email: "b@x.com"}
	require.NoError(t, store.Save("tok2", other))

	sess, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "tok2", sess.Token)
	assert.Equal(t, "u2", sess.User.ID)
}
