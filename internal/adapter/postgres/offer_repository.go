package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// OfferRepository implements port.OfferRepository using pgxpool for
// PostgreSQL.
type OfferRepository struct {
	pool *pgxpool.Pool
}

// NewOfferRepository returns a new repository instance.
func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

const offerColumns = `offer_id, title, description, savings_text, affiliate_url, position, is_active, created_at, updated_at`

// created_at breaks position ties so equal positions keep insertion order.
const offerOrder = ` ORDER BY position ASC, created_at ASC`

func scanOffer(row pgx.CollectableRow) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.SavingsText, &o.AffiliateURL, &o.Position, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanOfferWithStats(row pgx.CollectableRow) (port.OfferWithStats, error) {
	var ows port.OfferWithStats
	o := &ows.Offer
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.SavingsText, &o.AffiliateURL, &o.Position, &o.IsActive, &o.CreatedAt, &o.UpdatedAt, &ows.ActionCount)
	return ows, err
}

// ListActive returns active offers in display order.
func (r *OfferRepository) ListActive(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+offerColumns+` FROM offers WHERE is_active`+offerOrder)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOffer)
}

// ListAll returns every offer with its action count for the admin view.
func (r *OfferRepository) ListAll(ctx context.Context) ([]port.OfferWithStats, error) {
	rows, err := r.pool.Query(ctx, `SELECT o.offer_id, o.title, o.description, o.savings_text, o.affiliate_url,
       o.position, o.is_active, o.created_at, o.updated_at, count(a.action_id)
FROM offers o
LEFT JOIN actions a ON a.offer_id = o.offer_id
GROUP BY o.offer_id
ORDER BY o.position ASC, o.created_at ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOfferWithStats)
}

// Get returns one offer with its action count, or nil when absent.
func (r *OfferRepository) Get(ctx context.Context, id string) (*port.OfferWithStats, error) {
	var ows port.OfferWithStats
	o := &ows.Offer
	err := r.pool.QueryRow(ctx, `SELECT o.offer_id, o.title, o.description, o.savings_text, o.affiliate_url,
       o.position, o.is_active, o.created_at, o.updated_at, count(a.action_id)
FROM offers o
LEFT JOIN actions a ON a.offer_id = o.offer_id
WHERE o.offer_id::text = $1
GROUP BY o.offer_id`, id).
		Scan(&o.ID, &o.Title, &o.Description, &o.SavingsText, &o.AffiliateURL, &o.Position, &o.IsActive, &o.CreatedAt, &o.UpdatedAt, &ows.ActionCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ows, nil
}

// Create inserts the offer. A zero position is replaced with
// max(position)+1 inside the statement, so concurrent creates cannot both
// read the same maximum.
func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	return r.pool.QueryRow(ctx, `INSERT INTO offers
    (offer_id, title, description, savings_text, affiliate_url, position, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5,
        COALESCE(NULLIF($6::int, 0), (SELECT COALESCE(MAX(position), 0) + 1 FROM offers)),
        $7, now(), now())
RETURNING position, created_at, updated_at`,
		o.ID, o.Title, o.Description, o.SavingsText, o.AffiliateURL, o.Position, o.IsActive).
		Scan(&o.Position, &o.CreatedAt, &o.UpdatedAt)
}

// Update applies the non-nil fields of upd and returns the updated offer,
// or nil when no offer has the given id.
func (r *OfferRepository) Update(ctx context.Context, id string, upd port.OfferUpdate) (*domain.Offer, error) {
	rows, err := r.pool.Query(ctx, `UPDATE offers SET
    title = COALESCE($2, title),
    description = COALESCE($3, description),
    savings_text = COALESCE($4, savings_text),
    affiliate_url = COALESCE($5, affiliate_url),
    position = COALESCE($6, position),
    is_active = COALESCE($7, is_active),
    updated_at = now()
WHERE offer_id::text = $1
RETURNING `+offerColumns,
		id, upd.Title, upd.Description, upd.SavingsText, upd.AffiliateURL, upd.Position, upd.IsActive)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectOneRow(rows, scanOffer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete removes the offer. The actions foreign key cascades, so every
// ledger row referencing the offer goes with it; analytics history for a
// deleted offer is intentionally not retained.
func (r *OfferRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE offer_id::text = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Reorder assigns position = index+1 for each id in one transaction. Any
// id matching no offer aborts the whole transaction, leaving every
// position as it was.
func (r *OfferRepository) Reorder(ctx context.Context, ids []string) ([]domain.Offer, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	for i, id := range ids {
		var tag pgconn.CommandTag
		tag, err = tx.Exec(ctx, `UPDATE offers SET position = $1, updated_at = now() WHERE offer_id::text = $2`, i+1, id)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			err = domain.Validationf("unknown offer id %q", id)
			return nil, err
		}
	}

	var rows pgx.Rows
	rows, err = tx.Query(ctx, `SELECT `+offerColumns+` FROM offers`+offerOrder)
	if err != nil {
		return nil, err
	}
	var offers []domain.Offer
	offers, err = pgx.CollectRows(rows, scanOffer)
	if err != nil {
		return nil, err
	}
	return offers, nil
}
