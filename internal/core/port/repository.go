package port

import (
	"context"

	"offerchain/internal/core/domain"
)

// LeadRepository persists lead identities keyed by client fingerprint.
type LeadRepository interface {
	// Upsert inserts a lead with the given id and fingerprint, or returns
	// the existing lead for that fingerprint. The operation is atomic:
	// concurrent first calls for one fingerprint converge on a single row.
	// The flag is true when this call created the lead.
	Upsert(ctx context.Context, id, fingerprint string) (domain.Lead, bool, error)
	// FindByFingerprint returns the lead for fingerprint, or nil when none
	// exists.
	FindByFingerprint(ctx context.Context, fingerprint string) (*domain.Lead, error)
	// Exists reports whether a lead with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

// OfferUpdate carries the fields of a sparse offer update. Nil fields are
// left untouched.
type OfferUpdate struct {
	Title        *string
	Description  *string
	SavingsText  *string
	AffiliateURL *string
	Position     *int
	IsActive     *bool
}

// OfferWithStats annotates an offer with its ledger row count for the
// admin catalog view.
type OfferWithStats struct {
	Offer       domain.Offer
	ActionCount int64
}

// OfferRepository persists the offer catalog.
type OfferRepository interface {
	// ListActive returns active offers ordered ascending by position.
	ListActive(ctx context.Context) ([]domain.Offer, error)
	// ListAll returns every offer, active or not, with action counts.
	ListAll(ctx context.Context) ([]OfferWithStats, error)
	// Get returns one offer with its action count, or nil when absent.
	Get(ctx context.Context, id string) (*OfferWithStats, error)
	// Create inserts the offer. When o.Position is zero the row is
	// assigned max(position)+1 in the same statement; the assigned
	// position and timestamps are written back into o.
	Create(ctx context.Context, o *domain.Offer) error
	// Update applies the non-nil fields of upd and returns the updated
	// offer, or nil when no offer has the given id.
	Update(ctx context.Context, id string, upd OfferUpdate) (*domain.Offer, error)
	// Delete removes the offer and, by cascade, every action referencing
	// it. It returns false when no offer has the given id.
	Delete(ctx context.Context, id string) (bool, error)
	// Reorder assigns position = index+1 for each id inside a single
	// transaction. An id matching no offer aborts the whole transaction,
	// leaving every position unchanged.
	Reorder(ctx context.Context, ids []string) ([]domain.Offer, error)
}

// ActionFilter narrows a ledger query. Zero values match everything.
type ActionFilter struct {
	LeadID     string
	ActionType domain.ActionType
}

// ActionRecord is a ledger row joined with its offer's display fields.
// The offer fields are nil for rows recorded without an offer.
type ActionRecord struct {
	Action        domain.Action
	OfferTitle    *string
	OfferPosition *int
}

// OfferStats aggregates ledger events for one offer.
type OfferStats struct {
	OfferID  string
	Title    string
	Position int
	Views    int64
	Declines int64
	Submits  int64
}

// StatsReport is the admin analytics aggregate.
type StatsReport struct {
	Leads    int64
	Views    int64
	Declines int64
	Submits  int64
	Offers   []OfferStats
}

// ActionRepository appends to and reads the action ledger.
type ActionRepository interface {
	// Insert appends one row. CreatedAt is assigned by the store and
	// written back into a.
	Insert(ctx context.Context, a *domain.Action) error
	// Query returns rows matching f, newest first, capped at 100. Callers
	// needing more must narrow the filter.
	Query(ctx context.Context, f ActionFilter) ([]ActionRecord, error)
	// Stats aggregates the ledger for the admin analytics view.
	Stats(ctx context.Context) (*StatsReport, error)
}
