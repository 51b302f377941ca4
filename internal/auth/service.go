package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// Service defines the interface for the authentication subsystem. The rest of
// the application only consumes "who is the current user" and "log this user
// in/out"; password handling stays behind this boundary.
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, w http.ResponseWriter, user *domain.User) error
	Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error
	UserFromRequest(ctx context.Context, r *http.Request) (*domain.User, error)
	PurgeExpiredSessions(ctx context.Context) error
}

type service struct {
	users      repository.User
	sessions   repository.Session
	cache      *sessionCache
	sessionTTL time.Duration
	secure     bool
}

// NewService creates the authentication service.
// secure controls the Secure flag on session cookies.
func NewService(users repository.User, sessions repository.Session, sessionTTL time.Duration, secure bool) Service {
	return &service{
		users:      users,
		sessions:   sessions,
		cache:      newSessionCache(defaultCacheSize, defaultCacheTTL),
		sessionTTL: sessionTTL,
		secure:     secure,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both map to ErrInvalidCredentials so callers cannot probe which
// usernames exist.
func (s *service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login establishes a session for the user and sets the session cookie.
func (s *service) Login(ctx context.Context, w http.ResponseWriter, user *domain.User) error {
	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	s.cache.Set(&session)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	logger.FromContext(ctx).Info("User logged in", "user_id", user.ID)
	return nil
}

// Logout destroys the current session, if any, and expires the cookie.
// Logging out without a session is not an error.
func (s *service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := s.sessions.DeleteSession(ctx, cookie.Value); err != nil {
			return err
		}
		s.cache.Invalidate(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserFromRequest resolves the authenticated user from the session cookie.
// Returns ErrSessionNotFound when the request carries no usable session.
func (s *service) UserFromRequest(ctx context.Context, r *http.Request) (*domain.User, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, ok := s.cache.Get(cookie.Value)
	if !ok {
		session, err = s.sessions.GetSession(ctx, cookie.Value)
		if err != nil {
			return nil, err
		}
		s.cache.Set(session)
	}

	if session.Expired(time.Now()) {
		s.cache.Invalidate(session.Token)
		if err := s.sessions.DeleteSession(ctx, session.Token); err != nil {
			logger.FromContext(ctx).Warn("Failed to delete expired session", "error", err)
		}
		return nil, domain.ErrSessionExpired
	}

	return s.users.GetUserByID(ctx, session.UserID)
}

// PurgeExpiredSessions deletes all expired session rows.
func (s *service) PurgeExpiredSessions(ctx context.Context) error {
	n, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info("Purged expired sessions", "count", n)
	}
	return nil
}
