// Package session owns the persisted login state: the bearer token and the
// user profile the backend issued with it. The store is the single writer of
// that state; every other component reads through it and subscribes to change
// notifications instead of re-reading storage ad hoc.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// Session is the (token, user) pair representing a logged-in context.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store persists a Session as one JSON file so token and user can never be
// observed half-written. All access is serialized behind one mutex.
type Store struct {
	mu   sync.Mutex
	path string

	loaded  bool
	current Session
	present bool

	subs []func(Session, bool)
}

// NewStore creates a store backed by the file at path. The file is read
// lazily on first access.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the token/user pair atomically (temp file + rename) and
// notifies subscribers. Both fields are always written together.
func (s *Store) Save(token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Token: token, User: user}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit session file: %w", err)
	}

	s.loaded = true
	s.current = sess
	s.present = true
	s.notifyLocked()
	return nil
}

// Read returns the current session. A missing, unreadable, or malformed
// session file yields (zero, false); Read never fails hard.
func (s *Store) Read() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.current, s.present
}

// Token returns just the bearer token, or "" when no session is present.
func (s *Store) Token() string {
	sess, ok := s.Read()
	if !ok {
		return ""
	}
	return sess.Token
}

// Clear removes the persisted session and notifies subscribers. Clearing an
// already-absent session is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	os.Remove(s.path)
	s.loaded = true
	s.current = Session{}
	if s.present {
		s.present = false
		s.notifyLocked()
	}
}

// Subscribe registers fn to run after every Save and every effective Clear,
// with the new session state. Callbacks run synchronously on the mutating
// goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func(sess Session, present bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt session files fail soft to "not logged in".
		return
	}
	if sess.Token == "" || sess.User.ID == "" {
		return
	}
	s.current = sess
	s.present = true
}

func (s *Store) notifyLocked() {
	for _, fn := range s.subs {
		fn(s.current, s.present)
	}
}
