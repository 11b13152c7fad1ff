// Package session is the identity boundary: it remembers which customer
// is authenticated across requests. Core logic never reads it directly;
// handlers resolve the identity here and pass it down.
package session

import (
	"net/http"
	"sync"
	"time"

	"puntos-store/internal/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager holds active sessions in memory behind a signed cookie. Tokens
// are random; the cookie carries the token plus an HMAC signature so a
// forged or tampered cookie never reaches the session map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]entry

	signer     signer
	cookieName string
	ttl        time.Duration
	logger     zerolog.Logger
}

type entry struct {
	identity  string
	expiresAt time.Time
}

// NewManager creates a session manager from configuration.
func NewManager(cfg config.SessionConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions:   make(map[string]entry),
		signer:     signer{secret: []byte(cfg.Secret)},
		cookieName: cfg.CookieName,
		ttl:        time.Duration(cfg.TTLMinutes) * time.Minute,
		logger:     logger.With().Str("component", "session").Logger(),
	}
}

// Issue starts a session for the given identity and sets the signed
// session cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, identity string) {
	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = entry{
		identity:  identity,
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    m.signer.Sign(token),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	m.logger.Debug().Str("identity", identity).Msg("session issued")
}

// Identity resolves the authenticated identity from the request cookie.
// Returns false for a missing, tampered, unknown, or expired session.
func (m *Manager) Identity(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return "", false
	}

	token, ok := m.signer.Verify(cookie.Value)
	if !ok {
		m.logger.Warn().Msg("session cookie signature mismatch")
		return "", false
	}

	m.mu.RLock()
	e, found := m.sessions[token]
	m.mu.RUnlock()

	if !found {
		return "", false
	}

	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", false
	}

	return e.identity, true
}

// Clear revokes the request's session, if any, and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		if token, ok := m.signer.Verify(cookie.Value); ok {
			m.mu.Lock()
			delete(m.sessions, token)
			m.mu.Unlock()
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
