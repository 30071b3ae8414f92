package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/nnema05/music-convertor-website/models"
	"github.com/nnema05/music-convertor-website/utils"
)

// Landing redirects the bare root to the login page.
func Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Login serves the login form on GET and processes credentials on POST.
// Every failure branch re-renders the form with a message and HTTP 200;
// the login page is the only surface with structured user-facing errors.
func Login(w http.ResponseWriter, r *http.Request, db utils.PgxIface, store utils.SessionStore, secret string) {
	if r.Method != http.MethodPost {
		renderPage(w, "login.html", models.LoginPage{})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := utils.ValidateCredentials(username, password); err != nil {
		renderPage(w, "login.html", models.LoginPage{Message: err.Error(), Error: true})
		return
	}

	user, err := utils.GetUserByUsername(username, db)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			renderPage(w, "login.html", models.LoginPage{
				Message: "Username not found. Please register.",
				Error:   true,
			})
			return
		}
		logrus.Errorln("Login lookup failed for user:", username, "error:", err)
		renderPage(w, "login.html", models.LoginPage{
			Message: "Something went wrong. Please try again.",
			Error:   true,
		})
		return
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		renderPage(w, "login.html", models.LoginPage{
			Message: "Incorrect username or password.",
			Error:   true,
		})
		return
	}

	session := utils.NewSession(user.Username, r)
	if err := store.Create(r.Context(), session); err != nil {
		logrus.Errorln("Failed to store session for user:", username, "error:", err)
		renderPage(w, "login.html", models.LoginPage{
			Message: "Something went wrong. Please try again.",
			Error:   true,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    utils.SignSessionValue(session.Token, secret),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   utils.SessionMaxAgeSeconds(),
	})

	logrus.Infof("Login successful for user: %s", username)
	http.Redirect(w, r, "/discover", http.StatusSeeOther)
}

// Register serves the registration form on GET and creates the account
// on POST. Store-level failures keep the user on the registration flow
// via a redirect, carrying the message in an error query parameter.
func Register(w http.ResponseWriter, r *http.Request, db utils.PgxIface) {
	if r.Method != http.MethodPost {
		msg := r.URL.Query().Get("error")
		renderPage(w, "register.html", models.RegisterPage{Message: msg, Error: msg != ""})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := utils.ValidateCredentials(username, password); err != nil {
		renderPage(w, "register.html", models.RegisterPage{Message: err.Error(), Error: true})
		return
	}

	if err := utils.AddUser(username, password, db); err != nil {
		logrus.Errorln("Registration failed for user:", username, "error:", err)
		msg := "Error creating account. Please try again."
		if errors.Is(err, utils.ErrUsernameTaken) {
			msg = "That username is already registered."
		}
		http.Redirect(w, r, "/register?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	// Best effort; registration never waits on the notification.
	go func() {
		if err := utils.SendSignupNotification(username); err != nil {
			logrus.Errorln("Signup notification failed:", err)
		}
	}()

	logrus.Infof("Registered new user: %s", username)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout destroys the current session and clears the cookie. A missing
// or unreadable cookie is not an error; there is simply nothing to do.
func Logout(w http.ResponseWriter, r *http.Request, store utils.SessionStore, secret string) {
	st, err := r.Cookie(sessionCookieName)
	if err == nil && st.Value != "" {
		if token, ok := utils.ParseSessionValue(st.Value, secret); ok {
			if err := store.Destroy(r.Context(), token); err != nil {
				logrus.Errorln("Failed to destroy session:", err)
				http.Error(w, "Failed to log out. Please try again.", http.StatusInternalServerError)
				return
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	renderPage(w, "logout.html", nil)
}
