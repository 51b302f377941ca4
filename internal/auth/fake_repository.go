package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// FakeUserRepository is a stateful in-memory implementation of
// repository.User for integration-style unit tests.
type FakeUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[int64]*domain.User)}
}

func (f *FakeUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == user.Username {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *FakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
}

func (f *FakeUserRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	copied := *user
	return &copied, nil
}

// Count returns the number of stored users.
func (f *FakeUserRepository) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// FakeSessionRepository is a stateful in-memory implementation of
// repository.Session.
type FakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewFakeSessionRepository() *FakeSessionRepository {
	return &FakeSessionRepository{sessions: make(map[string]domain.Session)}
}

func (f *FakeSessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	session.CreatedAt = time.Now()
	f.sessions[session.Token] = session
	return nil
}

func (f *FakeSessionRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (f *FakeSessionRepository) DeleteSession(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, token)
	return nil
}

func (f *FakeSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var deleted int64
	now := time.Now()
	for token, session := range f.sessions {
		if session.Expired(now) {
			delete(f.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

// Count returns the number of stored sessions.
func (f *FakeSessionRepository) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}
