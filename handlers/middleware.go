package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nnema05/music-convertor-website/models"
	"github.com/nnema05/music-convertor-website/utils"
)

const sessionCookieName = "session_token"

// CurrentSession resolves the request's session, or nil when the cookie
// is missing, the signature is bad, or the store has no live session.
// Store failures are logged and treated as "no session".
func CurrentSession(r *http.Request, store utils.SessionStore, secret string) *models.Session {
	st, err := r.Cookie(sessionCookieName)
	if err != nil || st.Value == "" {
		return nil
	}

	token, ok := utils.ParseSessionValue(st.Value, secret)
	if !ok {
		return nil
	}

	session, err := store.Get(r.Context(), token)
	if err != nil {
		logrus.Errorln("Error looking up session:", err)
		return nil
	}
	return session
}

// RequireSession gates a route: without a live session the request is
// redirected to the login page and the handler never runs. Which routes
// are gated is declared explicitly in main, not implied by registration
// order.
func RequireSession(store utils.SessionStore, secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if CurrentSession(r, store, secret) == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
