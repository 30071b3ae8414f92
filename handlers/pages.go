package handlers

import (
	"net/http"

	"github.com/nnema05/music-convertor-website/models"
	"github.com/nnema05/music-convertor-website/utils"
)

// Discover renders the discover page. Access control happens in the
// RequireSession gate wrapped around it in main.
func Discover(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "discover.html", nil)
}

// Profile re-checks the session itself and answers plain-text 401 when
// it is absent, instead of the gate's redirect.
func Profile(w http.ResponseWriter, r *http.Request, store utils.SessionStore, secret string) {
	session := CurrentSession(r, store, secret)
	if session == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	renderPage(w, "profile.html", models.ProfilePage{Username: session.Username})
}
