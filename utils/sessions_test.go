package utils_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnema05/music-convertor-website/models"
	"github.com/nnema05/music-convertor-website/utils"
)

func TestCookieExists(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func() *http.Request
		cookieName string
		want       bool
	}{
		{
			name: "Cookie exists with value",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  "session_token",
					Value: "abc123",
				})
				return req
			},
			cookieName: "session_token",
			want:       true,
		},
		{
			name: "Cookie exists but empty value",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  "session_token",
					Value: "",
				})
				return req
			},
			cookieName: "session_token",
			want:       false,
		},
		{
			name: "Cookie doesn't exist",
			setupReq: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			cookieName: "session_token",
			want:       false,
		},
		{
			name: "Different cookie exists",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  "other_cookie",
					Value: "xyz789",
				})
				return req
			},
			cookieName: "session_token",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.setupReq()
			if got := utils.CookieExists(req, tt.cookieName); got != tt.want {
				t.Errorf("CookieExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name     string
		setupReq func() *http.Request
		want     string
	}{
		{
			name: "IP from X-Forwarded-For",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Forwarded-For", "203.0.113.195")
				req.RemoteAddr = "192.168.1.1:12345"
				return req
			},
			want: "203.0.113.195",
		},
		{
			name: "IP from RemoteAddr",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.RemoteAddr = "192.168.1.1:12345"
				return req
			},
			want: "192.168.1.1:12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.setupReq()
			if got := utils.GetIP(req); got != tt.want {
				t.Errorf("GetIP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("User-Agent", "test-agent")

	session := utils.NewSession("alice", req)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "test-agent", session.UserAgent)

	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()), "new session must not be expired")

	// Tokens must be unique per session
	other := utils.NewSession("alice", req)
	assert.NotEqual(t, session.Token, other.Token)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get returns the session", func(t *testing.T) {
		store := utils.NewMemoryStore()
		session := utils.NewSession("alice", httptest.NewRequest(http.MethodPost, "/login", nil))

		require.NoError(t, store.Create(ctx, session))

		got, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("get unknown token returns nil", func(t *testing.T) {
		store := utils.NewMemoryStore()

		got, err := store.Get(ctx, "no-such-token")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is not returned", func(t *testing.T) {
		store := utils.NewMemoryStore()
		session := models.Session{
			Token:     "expired-token",
			Username:  "alice",
			CreatedAt: time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
			ExpiresAt: time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
		}
		require.NoError(t, store.Create(ctx, session))

		got, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("destroy removes the session", func(t *testing.T) {
		store := utils.NewMemoryStore()
		session := utils.NewSession("alice", httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, store.Create(ctx, session))

		require.NoError(t, store.Destroy(ctx, session.Token))

		got, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("destroying an absent token succeeds", func(t *testing.T) {
		store := utils.NewMemoryStore()
		assert.NoError(t, store.Destroy(ctx, "never-existed"))
	})

	t.Run("one user can hold several sessions", func(t *testing.T) {
		store := utils.NewMemoryStore()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)

		first := utils.NewSession("alice", req)
		second := utils.NewSession("alice", req)
		require.NoError(t, store.Create(ctx, first))
		require.NoError(t, store.Create(ctx, second))

		require.NoError(t, store.Destroy(ctx, first.Token))

		got, err := store.Get(ctx, second.Token)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
	})
}
