package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/forms"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
	"github.com/osse101/Stockroom_Go/internal/web"
)

// safeNextPath returns the next redirect target if it is a local path,
// otherwise the fallback. Absolute URLs are rejected to prevent open
// redirects.
func safeNextPath(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}

// HandleLoginPage renders an empty login form.
func HandleLoginPage(renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := basePage(w, r, "Log in")
		page.Form = forms.LoginForm{}
		page.Query = r.URL.Query().Get("next")
		renderer.Render(w, r, http.StatusOK, web.PageLogin, page)
	}
}

// HandleLogin processes a credential submission and establishes a session.
func HandleLogin(authService auth.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !parseForm(w, r) {
			return
		}
		form := forms.ParseLoginForm(r.PostForm)
		next := r.URL.Query().Get("next")

		rerender := func(errs map[string]string) {
			page := basePage(w, r, "Log in")
			page.Form = form
			page.Errors = errs
			page.Query = next
			renderer.Render(w, r, http.StatusOK, web.PageLogin, page)
		}

		if errs := form.Validate(); len(errs) > 0 {
			rerender(errs)
			return
		}

		user, err := authService.Authenticate(r.Context(), form.Username, form.Password)
		if err != nil {
			log.Debug("Login failed", "username", form.Username)
			metrics.LoginsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
			rerender(map[string]string{"form": "Invalid username or password"})
			return
		}

		if err := authService.Login(r.Context(), w, user); err != nil {
			log.Error("Failed to establish session", "error", err)
			rerender(map[string]string{"form": "Could not sign you in, try again"})
			return
		}

		metrics.LoginsTotal.WithLabelValues(metrics.LoginResultSuccess).Inc()
		http.Redirect(w, r, safeNextPath(next, "/dashboard"), http.StatusSeeOther)
	}
}

// HandleLogout destroys the current session and redirects to the index.
func HandleLogout(authService auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := authService.Logout(r.Context(), w, r); err != nil {
			logger.FromContext(r.Context()).Error("Failed to log out", "error", err)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
