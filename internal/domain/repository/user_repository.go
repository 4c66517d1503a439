package repository

import (
	"errors"

	"github.com/pommyhq/accounts-api/internal/domain/entity"
)

// Sentinel errors every implementation must translate storage faults into.
// Anything else is passed through raw for the use case to wrap.
var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already taken")
)

// UserRepository defines the storage contract the use cases depend on.
// FindByID and FindByEmail return ErrNotFound for an absent user; Save and
// Update return ErrDuplicateEmail when the unique email constraint trips.
type UserRepository interface {
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Save(u *entity.User) error
	Update(u *entity.User) error
	Delete(id string) error
}
