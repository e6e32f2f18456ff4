package repository

import (
	"time"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
)

// GadgetPatch carries a partial update; nil fields are left untouched.
type GadgetPatch struct {
	Name   *string
	Status *string
}

// GadgetRepository defines the persistence operations for gadgets.
// List filters by exact status when status is non-empty.
type GadgetRepository interface {
	Create(g *entity.Gadget) error
	List(status string) ([]*entity.Gadget, error)
	Update(id string, patch GadgetPatch) (*entity.Gadget, error)
	Decommission(id string, at time.Time) (*entity.Gadget, error)
}
