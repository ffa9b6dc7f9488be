package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"offerchain/internal/core/domain"
)

// LeadRepository implements port.LeadRepository using pgxpool for
// PostgreSQL.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// Upsert resolves or creates the lead for a fingerprint in one statement.
// The DO UPDATE arm is a no-op write that lets RETURNING yield the
// existing row; (xmax = 0) distinguishes a fresh insert from a conflict,
// so concurrent first requests from the same fingerprint converge on a
// single lead instead of racing a read-then-create.
func (r *LeadRepository) Upsert(ctx context.Context, id, fingerprint string) (domain.Lead, bool, error) {
	var (
		lead    domain.Lead
		created bool
	)
	err := r.pool.QueryRow(ctx, `INSERT INTO leads (lead_id, ip_address, created_at)
VALUES ($1, $2, now())
ON CONFLICT (ip_address) DO UPDATE SET ip_address = EXCLUDED.ip_address
RETURNING lead_id, ip_address, created_at, (xmax = 0)`,
		id, fingerprint).Scan(&lead.ID, &lead.IPAddress, &lead.CreatedAt, &created)
	if err != nil {
		return domain.Lead{}, false, err
	}
	return lead, created, nil
}

// FindByFingerprint returns the lead for a fingerprint, or nil when none
// exists.
func (r *LeadRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.pool.QueryRow(ctx, `SELECT lead_id, ip_address, created_at FROM leads WHERE ip_address = $1`, fingerprint).
		Scan(&lead.ID, &lead.IPAddress, &lead.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Exists reports whether a lead with the given id exists. The id is
// compared as text so a malformed id reads as absent rather than as a
// uuid encoding error.
func (r *LeadRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leads WHERE lead_id::text = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
