package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/nnema05/music-convertor-website/models"
)

// sessionTTL is how long a session lives after login.
const sessionTTL = 24 * time.Hour

// SessionMaxAgeSeconds is the cookie MaxAge matching the session TTL.
func SessionMaxAgeSeconds() int {
	return int(sessionTTL.Seconds())
}

// SessionStore holds the authoritative session payload on the server;
// the client only ever carries the opaque token. Backing storage is
// in-memory by default, Redis when configured, behind the same contract.
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, token string) error
}

// NewSession builds a session for a freshly authenticated user with a new
// random token, capturing request metadata for logging.
func NewSession(username string, r *http.Request) models.Session {
	now := time.Now()
	return models.Session{
		Token:     GenerateToken(32),
		Username:  username,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: now.Add(sessionTTL).Format(time.RFC3339),
		UserAgent: GetUserAgent(r),
		IPAddress: GetIP(r),
	}
}

// MemoryStore keeps sessions in a process-local map. A restart logs
// everyone out, which is the intended behavior.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

func (s *MemoryStore) Create(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

// Get returns (nil, nil) for unknown or expired tokens; errors are
// reserved for backend failures in other implementations.
func (s *MemoryStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil || time.Now().After(expiresAt) {
		return nil, nil
	}
	return &session, nil
}

// Destroy removes a session. Destroying an absent token succeeds: two
// tabs logging out at once means last destroy wins.
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func CookieExists(r *http.Request, name string) bool {
	st, err := r.Cookie(name)
	return err == nil && st.Value != ""
}

// GetUserAgent returns the User-Agent string from the request
func GetUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// GetIP returns the IP address of the client from the request
func GetIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}
