package usecase

import (
	"context"

	"github.com/google/uuid"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// IdentityUseCase maps client fingerprints to stable lead identities.
type IdentityUseCase struct {
	leads port.LeadRepository
}

// NewIdentityUseCase creates a new usecase with the provided repository.
func NewIdentityUseCase(leads port.LeadRepository) *IdentityUseCase {
	return &IdentityUseCase{leads: leads}
}

// ResolveOrCreate returns the lead for fingerprint, creating it when
// absent. A candidate id is minted up front; whether it was used is
// reported by the repository's created flag.
func (u *IdentityUseCase) ResolveOrCreate(ctx context.Context, fingerprint string) (domain.Lead, bool, error) {
	if fingerprint == "" {
		return domain.Lead{}, false, domain.Validationf("fingerprint is required")
	}
	return u.leads.Upsert(ctx, uuid.NewString(), fingerprint)
}

// Lookup returns the lead for fingerprint, or domain.ErrNotFound.
func (u *IdentityUseCase) Lookup(ctx context.Context, fingerprint string) (domain.Lead, error) {
	if fingerprint == "" {
		return domain.Lead{}, domain.Validationf("fingerprint is required")
	}
	lead, err := u.leads.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		return domain.Lead{}, err
	}
	if lead == nil {
		return domain.Lead{}, domain.ErrNotFound
	}
	return *lead, nil
}
