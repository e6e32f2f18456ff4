package application

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
	repo "github.com/imf-ops/gadget-api/internal/domain/repository"
)

var ErrInvalidStatusFilter = errors.New("invalid status value")

// Codenames is the fixed pool new gadgets draw from. Names are not unique
// across gadgets.
var Codenames = []string{"The Nightingale", "The Kraken", "Shadow Blade", "Ghost"}

// RandSource is the randomness the engine consumes. *rand.Rand satisfies it;
// tests inject a seeded source for deterministic draws.
type RandSource interface {
	Intn(n int) int
}

// GadgetView is the wire representation of a gadget. SuccessProbability is a
// per-call display decoration on list responses and is never persisted.
type GadgetView struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Status             string     `json:"status"`
	DecommissionedAt   *time.Time `json:"decommissionedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	SuccessProbability *int       `json:"successProbability,omitempty"`
}

// SelfDestructConfirmation is an ephemeral acknowledgment; the code is not
// persisted and no later step correlates with it.
type SelfDestructConfirmation struct {
	Message          string `json:"message"`
	ConfirmationCode int    `json:"confirmationCode"`
}

// GadgetService enforces what little structure the gadget lifecycle has:
// status writes are unguarded by design (a decommissioned gadget can be
// reactivated via update), only the decommission operation stamps the
// timestamp, and create stores the supplied status verbatim without checking
// it against the known set. Only the list filter is validated.
type GadgetService struct {
	Repo   repo.GadgetRepository
	Rand   RandSource
	Logger *logrus.Logger
}

func NewGadgetService(r repo.GadgetRepository, src RandSource, logger *logrus.Logger) *GadgetService {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GadgetService{Repo: r, Rand: src, Logger: logger}
}

func view(g *entity.Gadget) GadgetView {
	return GadgetView{
		ID:               g.ID,
		Name:             g.Name,
		Status:           g.Status,
		DecommissionedAt: g.DecommissionedAt,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// List returns all gadgets, or only those matching the status filter.
// The filter is a case-sensitive exact match against the known statuses.
// Each returned gadget carries a freshly drawn success probability in [0,100].
func (s *GadgetService) List(statusFilter string) ([]GadgetView, error) {
	if statusFilter != "" && !entity.IsValidStatus(statusFilter) {
		return nil, ErrInvalidStatusFilter
	}
	gadgets, err := s.Repo.List(statusFilter)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("gadget list failed")
		}
		return nil, err
	}
	out := make([]GadgetView, 0, len(gadgets))
	for _, g := range gadgets {
		v := view(g)
		p := s.Rand.Intn(101)
		v.SuccessProbability = &p
		out = append(out, v)
	}
	return out, nil
}

// Create assigns a random codename from the pool and stores the supplied
// status as-is.
func (s *GadgetService) Create(status string) (GadgetView, error) {
	g := &entity.Gadget{
		Name:   Codenames[s.Rand.Intn(len(Codenames))],
		Status: status,
	}
	if err := s.Repo.Create(g); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("gadget create failed")
		}
		return GadgetView{}, err
	}
	return view(g), nil
}

// Update applies a partial name/status patch. Status values are not checked
// here either; any string goes through.
func (s *GadgetService) Update(id string, name, status *string) (GadgetView, error) {
	g, err := s.Repo.Update(id, repo.GadgetPatch{Name: name, Status: status})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("gadget_id", id).Error("gadget update failed")
		}
		return GadgetView{}, err
	}
	return view(g), nil
}

// Decommission forces status to Decommissioned and stamps the current time,
// regardless of prior status. Calling it twice just restamps.
func (s *GadgetService) Decommission(id string) (GadgetView, error) {
	g, err := s.Repo.Decommission(id, time.Now().UTC())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("gadget_id", id).Error("gadget decommission failed")
		}
		return GadgetView{}, err
	}
	return view(g), nil
}

// InitiateSelfDestruct generates a 6-digit confirmation code in
// [100000, 999999]. Stateless: nothing is persisted or correlated with a
// later confirmation step.
func (s *GadgetService) InitiateSelfDestruct(id string) SelfDestructConfirmation {
	return SelfDestructConfirmation{
		Message:          "Self-destruct sequence initiated",
		ConfirmationCode: 100000 + s.Rand.Intn(900000),
	}
}
