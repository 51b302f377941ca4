package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/forms"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
	"github.com/osse101/Stockroom_Go/internal/web"
)

// HandleSignupPage renders an empty registration form.
func HandleSignupPage(renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := basePage(w, r, "Sign up")
		page.Form = forms.RegisterForm{}
		renderer.Render(w, r, http.StatusOK, web.PageSignup, page)
	}
}

// HandleSignup processes a registration submission. On success the new user
// is verified against the auth service, logged in, and redirected to the
// index route. On validation failure the form is re-rendered with
// field-level errors and the submitted values preserved.
func HandleSignup(authService auth.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !parseForm(w, r) {
			return
		}
		form := forms.ParseRegisterForm(r.PostForm)

		rerender := func(errs map[string]string) {
			page := basePage(w, r, "Sign up")
			page.Form = form
			page.Errors = errs
			renderer.Render(w, r, http.StatusOK, web.PageSignup, page)
		}

		if errs := form.Validate(); len(errs) > 0 {
			log.Debug("Signup validation failed", "fields", len(errs))
			rerender(errs)
			return
		}

		if _, err := authService.Register(r.Context(), form.Username, form.Password1); err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				rerender(map[string]string{"username": "That username is taken"})
				return
			}
			log.Error("Failed to register user", "error", err)
			rerender(map[string]string{"form": "Could not create your account, try again"})
			return
		}
		metrics.UsersRegistered.Inc()

		// Verify the just-created credentials before establishing the
		// session. A failure here means the account was stored but cannot be
		// verified; the user keeps the account and is told to log in.
		user, err := authService.Authenticate(r.Context(), form.Username, form.Password1)
		if err != nil {
			log.Error("Post-registration authentication failed", "username", form.Username, "error", err)
			rerender(map[string]string{"form": "Could not sign you in, please try logging in"})
			return
		}

		if err := authService.Login(r.Context(), w, user); err != nil {
			log.Error("Failed to establish session after signup", "error", err)
			rerender(map[string]string{"form": "Could not sign you in, please try logging in"})
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
