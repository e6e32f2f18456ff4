package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
	"github.com/imf-ops/gadget-api/internal/domain/repository"
)

type GadgetRepository struct {
	pool *pgxpool.Pool
}

func NewGadgetRepository(pool *pgxpool.Pool) *GadgetRepository {
	return &GadgetRepository{pool: pool}
}

func (r *GadgetRepository) Create(g *entity.Gadget) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO gadgets (name, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, g.Name, g.Status)

	return row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GadgetRepository) List(status string) ([]*entity.Gadget, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, status, decommissioned_at, created_at, updated_at
		FROM gadgets
		ORDER BY created_at
	`
	args := []any{}
	if status != "" {
		query = `
			SELECT id, name, status, decommissioned_at, created_at, updated_at
			FROM gadgets
			WHERE status = $1
			ORDER BY created_at
		`
		args = append(args, status)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Gadget
	for rows.Next() {
		g := &entity.Gadget{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Status, &g.DecommissionedAt, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Update applies a partial patch. Nil patch fields keep the stored value via
// COALESCE. A direct status write to "Decommissioned" does not touch
// decommissioned_at; only Decommission does.
func (r *GadgetRepository) Update(id string, patch repository.GadgetPatch) (*entity.Gadget, error) {
	ctx := context.Background()
	g := &entity.Gadget{}

	row := r.pool.QueryRow(ctx, `
		UPDATE gadgets
		SET name = COALESCE($1, name),
		    status = COALESCE($2, status),
		    updated_at = now()
		WHERE id = $3
		RETURNING id, name, status, decommissioned_at, created_at, updated_at
	`, patch.Name, patch.Status, id)

	if err := row.Scan(&g.ID, &g.Name, &g.Status, &g.DecommissionedAt, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *GadgetRepository) Decommission(id string, at time.Time) (*entity.Gadget, error) {
	ctx := context.Background()
	g := &entity.Gadget{}

	row := r.pool.QueryRow(ctx, `
		UPDATE gadgets
		SET status = $1,
		    decommissioned_at = $2,
		    updated_at = now()
		WHERE id = $3
		RETURNING id, name, status, decommissioned_at, created_at, updated_at
	`, entity.StatusDecommissioned, at, id)

	if err := row.Scan(&g.ID, &g.Name, &g.Status, &g.DecommissionedAt, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

var _ repository.GadgetRepository = (*GadgetRepository)(nil)
