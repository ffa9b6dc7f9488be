package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// ActionRepository implements port.ActionRepository using pgxpool for
// PostgreSQL. The ledger is append-only: there are no update or single
// delete paths, rows only disappear through lead/offer cascade.
type ActionRepository struct {
	pool *pgxpool.Pool
}

// NewActionRepository returns a new repository instance.
func NewActionRepository(pool *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{pool: pool}
}

// Insert appends one row. created_at comes from the database clock and is
// written back into a; client-supplied timestamps are never stored.
func (r *ActionRepository) Insert(ctx context.Context, a *domain.Action) error {
	var metadata []byte
	if a.Metadata != nil {
		var err error
		if metadata, err = json.Marshal(a.Metadata); err != nil {
			return fmt.Errorf("encode metadata: %w", err)
		}
	}
	return r.pool.QueryRow(ctx, `INSERT INTO actions
    (action_id, lead_id, offer_id, action_type, session_id, offer_position, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING created_at`,
		a.ID, a.LeadID, a.OfferID, string(a.Type), a.SessionID, a.OfferPosition, metadata).
		Scan(&a.CreatedAt)
}

// Query returns ledger rows matching f, newest first, capped at 100, each
// joined with its offer's title and current position for display.
func (r *ActionRepository) Query(ctx context.Context, f port.ActionFilter) ([]port.ActionRecord, error) {
	query := `SELECT a.action_id, a.lead_id, a.offer_id, a.action_type, a.session_id,
       a.offer_position, a.metadata, a.created_at, o.title, o.position
FROM actions a
LEFT JOIN offers o ON o.offer_id = a.offer_id`

	var (
		where []string
		args  []interface{}
	)
	if f.LeadID != "" {
		args = append(args, f.LeadID)
		where = append(where, fmt.Sprintf("a.lead_id::text = $%d", len(args)))
	}
	if f.ActionType != "" {
		args = append(args, string(f.ActionType))
		where = append(where, fmt.Sprintf("a.action_type = $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.created_at DESC LIMIT 100"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ActionRecord, error) {
		var (
			rec        port.ActionRecord
			actionType string
			rawMeta    []byte
		)
		err := row.Scan(&rec.Action.ID, &rec.Action.LeadID, &rec.Action.OfferID, &actionType,
			&rec.Action.SessionID, &rec.Action.OfferPosition, &rawMeta, &rec.Action.CreatedAt,
			&rec.OfferTitle, &rec.OfferPosition)
		if err != nil {
			return rec, err
		}
		rec.Action.Type = domain.ActionType(actionType)
		if len(rawMeta) > 0 {
			if err = json.Unmarshal(rawMeta, &rec.Action.Metadata); err != nil {
				return rec, fmt.Errorf("decode metadata: %w", err)
			}
		}
		return rec, nil
	})
}

// Stats aggregates the ledger for the admin analytics view: total lead
// count, event counts per type, and per-offer counts in display order.
func (r *ActionRepository) Stats(ctx context.Context) (*port.StatsReport, error) {
	var report port.StatsReport

	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM leads`).Scan(&report.Leads); err != nil {
		return nil, err
	}

	err := r.pool.QueryRow(ctx, `SELECT
    count(*) FILTER (WHERE action_type = $1),
    count(*) FILTER (WHERE action_type = $2),
    count(*) FILTER (WHERE action_type = $3)
FROM actions`,
		string(domain.ActionView), string(domain.ActionDecline), string(domain.ActionSubmit)).
		Scan(&report.Views, &report.Declines, &report.Submits)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT o.offer_id, o.title, o.position,
    count(*) FILTER (WHERE a.action_type = $1),
    count(*) FILTER (WHERE a.action_type = $2),
    count(*) FILTER (WHERE a.action_type = $3)
FROM offers o
LEFT JOIN actions a ON a.offer_id = o.offer_id
GROUP BY o.offer_id
ORDER BY o.position ASC, o.created_at ASC`,
		string(domain.ActionView), string(domain.ActionDecline), string(domain.ActionSubmit))
	if err != nil {
		return nil, err
	}
	report.Offers, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.OfferStats, error) {
		var os port.OfferStats
		err := row.Scan(&os.OfferID, &os.Title, &os.Position, &os.Views, &os.Declines, &os.Submits)
		return os, err
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
