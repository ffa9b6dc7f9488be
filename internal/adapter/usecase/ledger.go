package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// LedgerUseCase validates and appends action events. The lead existence
// check is explicit rather than left to the foreign key so an unknown
// lead reads as NotFound instead of a storage failure.
type LedgerUseCase struct {
	leads   port.LeadRepository
	actions port.ActionRepository
}

// NewLedgerUseCase creates a new usecase with the provided repositories.
func NewLedgerUseCase(leads port.LeadRepository, actions port.ActionRepository) *LedgerUseCase {
	return &LedgerUseCase{leads: leads, actions: actions}
}

// Record appends one immutable event. The timestamp is assigned at insert
// time by the store, never taken from the caller.
func (u *LedgerUseCase) Record(ctx context.Context, in port.RecordActionInput) (port.RecordedAction, error) {
	if in.LeadID == "" || in.Type == "" {
		return port.RecordedAction{}, domain.Validationf("leadId and actionType are required")
	}
	if !in.Type.Valid() {
		return port.RecordedAction{}, domain.Validationf("invalid actionType, must be %s, %s or %s",
			domain.ActionView, domain.ActionDecline, domain.ActionSubmit)
	}

	exists, err := u.leads.Exists(ctx, in.LeadID)
	if err != nil {
		return port.RecordedAction{}, err
	}
	if !exists {
		return port.RecordedAction{}, fmt.Errorf("lead %s: %w", in.LeadID, domain.ErrNotFound)
	}

	a := domain.Action{
		ID:            uuid.NewString(),
		LeadID:        in.LeadID,
		OfferID:       in.OfferID,
		Type:          in.Type,
		SessionID:     in.SessionID,
		OfferPosition: in.OfferPosition,
		Metadata:      in.Metadata,
	}
	if err = u.actions.Insert(ctx, &a); err != nil {
		return port.RecordedAction{}, err
	}
	return port.RecordedAction{ID: a.ID, Type: a.Type, Timestamp: a.CreatedAt}, nil
}

// Query returns ledger rows matching f, newest first, capped by the
// repository.
func (u *LedgerUseCase) Query(ctx context.Context, f port.ActionFilter) ([]port.ActionRecord, error) {
	return u.actions.Query(ctx, f)
}
