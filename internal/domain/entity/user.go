package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Password always holds a bcrypt hash; the
// plaintext never reaches this struct.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a fresh user with a generated id and timestamps.
// UpdatedAt starts equal to CreatedAt and only moves forward from there.
// Inputs are expected to be validated and normalized by the caller;
// passwordHash must already be hashed.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
