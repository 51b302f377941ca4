package domain

import "time"

// User represents a registered account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
