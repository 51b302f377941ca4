package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

type ctxKey string

const userKey ctxKey = "currentUser"

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the authenticated user placed by RequireUser.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// LoadUser resolves the session on public routes so pages can show the
// logged-in state, but never blocks: anonymous requests pass through.
func LoadUser(authService Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := authService.UserFromRequest(r.Context(), r); err == nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser guards protected routes. Requests without a valid session are
// redirected to the login page with the original path in the next parameter.
func RequireUser(authService Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.UserFromRequest(r.Context(), r)
			if err != nil {
				logger.FromContext(r.Context()).Debug("Unauthenticated request",
					"path", r.URL.Path, "error", err)
				http.Redirect(w, r, LoginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
