package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTaken      = "username already taken"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgSessionExpired  = "session expired"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgNotOwner     = "item belongs to another user"

	// Category errors
	ErrMsgCategoryNotFound = "category not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrSessionExpired  = errors.New(ErrMsgSessionExpired)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrNotOwner     = errors.New(ErrMsgNotOwner)

	// Category errors
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
