// Package api is the single outbound HTTP path to the SkillBarter backend.
// The Gateway attaches the bearer token from the session store to every
// request that has one, and runs the global 401 recovery (clear session,
// bounce to login) before handing the error back to the caller.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/skillbarter/skillbarter/internal/client/session"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:3000"

// Gateway is the REST client for the SkillBarter backend. It never retries,
// never queues, and never blocks a request for lacking a token; the backend
// decides what requires authentication.
type Gateway struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     zerolog.Logger

	// onUnauthorized runs once per 401 response, after the session store
	// has been cleared. The CLI uses it to force the login view.
	onUnauthorized func()
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.http.Timeout = d }
}

// WithUnauthorizedHook sets the callback invoked on any 401 response.
func WithUnauthorizedHook(fn func()) Option {
	return func(g *Gateway) { g.onUnauthorized = fn }
}

// WithLogger sets the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// NewGateway creates a Gateway for the given base URL, reading credentials
// from store. An empty baseURL falls back to DefaultBaseURL.
func NewGateway(baseURL string, store *session.Store, opts ...Option) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// do issues one request. body (if non-nil) is JSON-encoded; out (if non-nil)
// receives the decoded response body on 2xx. Non-2xx statuses become
// *StatusError; 401 additionally clears the session and fires the hook.
func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := g.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		g.log.Debug().Str("path", path).Msg("unauthorized response, clearing session")
		g.store.Clear()
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return &StatusError{Status: resp.StatusCode, Message: readServerMessage(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: readServerMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// readServerMessage extracts {"message": ...} or {"error": ...} from an error
// body, falling back to the raw text. Bodies are capped to keep error strings
// bounded.
func readServerMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(data))
}
