package port

import (
	"context"
	"time"

	"offerchain/internal/core/domain"
)

// IdentityUseCase resolves inbound fingerprints to stable lead identities.
type IdentityUseCase interface {
	// ResolveOrCreate returns the lead for fingerprint, creating it when
	// absent. The flag is true when this call created the lead.
	ResolveOrCreate(ctx context.Context, fingerprint string) (domain.Lead, bool, error)
	// Lookup returns the lead for fingerprint, or domain.ErrNotFound.
	Lookup(ctx context.Context, fingerprint string) (domain.Lead, error)
}

// RecordActionInput is a requested ledger append.
type RecordActionInput struct {
	LeadID        string
	Type          domain.ActionType
	SessionID     *string
	OfferID       *string
	OfferPosition *int
	Metadata      map[string]any
}

// RecordedAction is the ledger's acknowledgement of an append.
type RecordedAction struct {
	ID        string
	Type      domain.ActionType
	Timestamp time.Time
}

// LedgerUseCase validates and appends action events, and serves the
// filtered read side.
type LedgerUseCase interface {
	Record(ctx context.Context, in RecordActionInput) (RecordedAction, error)
	Query(ctx context.Context, f ActionFilter) ([]ActionRecord, error)
}

// CreateOfferInput carries the fields of a new offer. Position zero means
// append at the end of the chain.
type CreateOfferInput struct {
	Title        string
	Description  string
	SavingsText  string
	AffiliateURL string
	Position     int
}

// CatalogUseCase manages the ordered offer list.
type CatalogUseCase interface {
	ListActive(ctx context.Context) ([]domain.Offer, error)
	ListAll(ctx context.Context) ([]OfferWithStats, error)
	Get(ctx context.Context, id string) (OfferWithStats, error)
	Create(ctx context.Context, in CreateOfferInput) (domain.Offer, error)
	Update(ctx context.Context, id string, upd OfferUpdate) (domain.Offer, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) ([]domain.Offer, error)
}

// StatsUseCase serves the admin analytics aggregate.
type StatsUseCase interface {
	Overview(ctx context.Context) (StatsReport, error)
}
