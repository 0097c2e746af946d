// Package session provides persisted HTTP session management over the
// key-value store. Sessions are identified by a secure cookie and stored as
// JSON records; they survive restarts because the backing store does.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"techpulse/internal/kv"
	"techpulse/internal/models"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "tp_session"

	// DefaultTTL is how long a session stays valid after creation.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in the store so they never collide
	// with the content collections.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data holds the session payload: the authenticated user record (password
// already stripped by the verifier) and the creation time used for expiry.
type Data struct {
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

// Store manages session lifecycle in the key-value store. The store has no
// native TTL, so expiry is enforced on read: an expired or unparseable
// record is discarded and the caller sees no session.
type Store struct {
	kv  kv.Store
	ttl time.Duration
}

// NewStore creates a session store over the given key-value backend.
func NewStore(s kv.Store) *Store {
	return &Store{kv: s, ttl: DefaultTTL}
}

// Create generates a new session for the user, persists it, and sets the
// session cookie on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, user *models.User) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	payload, err := json.Marshal(Data{User: *user, CreatedAt: time.Now()})
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.kv.Set(ctx, keyPrefix+id, payload); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true behind TLS in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data using the session ID from the request cookie.
// Returns nil if no valid session exists — a corrupt record is deleted
// rather than surfaced, so a bad persisted session degrades to
// unauthenticated instead of an error loop.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, err := s.kv.Get(ctx, keyPrefix+cookie.Value)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		s.kv.Delete(ctx, keyPrefix+cookie.Value)
		return nil, nil
	}

	if time.Since(data.CreatedAt) > s.ttl {
		s.kv.Delete(ctx, keyPrefix+cookie.Value)
		return nil, nil
	}

	return &data, nil
}

// Destroy removes the session record and expires the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	if err := s.kv.Delete(ctx, keyPrefix+cookie.Value); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
