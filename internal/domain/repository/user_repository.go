package repository

import (
	"errors"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
)

// Sentinel errors returned at the repository boundary. Callers decide how
// much of the distinction to surface; the HTTP layer deliberately folds
// ErrNotFound into a generic failure.
var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

// UserRepository defines the persistence operations for operative accounts.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
