package entity

import (
	"time"
)

// User is the aggregate root for the operative account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
