package usecase

import (
	"context"
	"errors"
	"testing"

	"offerchain/internal/core/domain"
)

// TestResolveIsIdempotentPerFingerprint ensures repeat visits from one
// fingerprint resolve to the same lead.
func TestResolveIsIdempotentPerFingerprint(t *testing.T) {
	svc := NewIdentityUseCase(newFakeLeadRepo())

	first, created, err := svc.ResolveOrCreate(context.Background(), "203.0.113.5")
	if err != nil {
		t.Fatalf("ResolveOrCreate error: %v", err)
	}
	if !created {
		t.Fatal("first resolve must create the lead")
	}

	second, created, err := svc.ResolveOrCreate(context.Background(), "203.0.113.5")
	if err != nil {
		t.Fatalf("ResolveOrCreate error: %v", err)
	}
	if created {
		t.Fatal("second resolve must not create a lead")
	}
	if second.ID != first.ID {
		t.Fatalf("expected stable lead id, got %s then %s", first.ID, second.ID)
	}
}

// TestDistinctFingerprintsGetDistinctLeads ensures fingerprints do not
// collapse onto one identity.
func TestDistinctFingerprintsGetDistinctLeads(t *testing.T) {
	svc := NewIdentityUseCase(newFakeLeadRepo())

	a, _, err := svc.ResolveOrCreate(context.Background(), "203.0.113.5")
	if err != nil {
		t.Fatalf("ResolveOrCreate error: %v", err)
	}
	b, _, err := svc.ResolveOrCreate(context.Background(), "198.51.100.7")
	if err != nil {
		t.Fatalf("ResolveOrCreate error: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("distinct fingerprints must resolve to distinct leads")
	}
}

// TestLookupUnknownFingerprint ensures lookup of an unseen fingerprint
// reads as NotFound, not as a creation.
func TestLookupUnknownFingerprint(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewIdentityUseCase(repo)

	_, err := svc.Lookup(context.Background(), "203.0.113.5")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byFingerprint) != 0 {
		t.Fatal("lookup must not create leads")
	}
}

// TestEmptyFingerprintRejected covers both operations.
func TestEmptyFingerprintRejected(t *testing.T) {
	svc := NewIdentityUseCase(newFakeLeadRepo())

	var ve *domain.ValidationError
	if _, _, err := svc.ResolveOrCreate(context.Background(), ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError from resolve, got %v", err)
	}
	if _, err := svc.Lookup(context.Background(), ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError from lookup, got %v", err)
	}
}
