package usecase

import (
	"context"
	"errors"
	"testing"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// TestRecordRejectsUnknownActionType ensures only the three ledger event
// types are accepted.
func TestRecordRejectsUnknownActionType(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.Upsert(context.Background(), "lead-1", "203.0.113.5")
	svc := NewLedgerUseCase(leads, &fakeActionRepo{})

	_, err := svc.Record(context.Background(), port.RecordActionInput{
		LeadID: "lead-1",
		Type:   domain.ActionType("PATH_PURCHASE"),
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestRecordRequiresLeadAndType covers the required-field check.
func TestRecordRequiresLeadAndType(t *testing.T) {
	svc := NewLedgerUseCase(newFakeLeadRepo(), &fakeActionRepo{})

	var ve *domain.ValidationError
	if _, err := svc.Record(context.Background(), port.RecordActionInput{Type: domain.ActionView}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing leadId, got %v", err)
	}
	if _, err := svc.Record(context.Background(), port.RecordActionInput{LeadID: "lead-1"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing actionType, got %v", err)
	}
}

// TestRecordUnknownLead ensures an event for an absent lead reads as
// NotFound and appends nothing.
func TestRecordUnknownLead(t *testing.T) {
	actions := &fakeActionRepo{}
	svc := NewLedgerUseCase(newFakeLeadRepo(), actions)

	_, err := svc.Record(context.Background(), port.RecordActionInput{
		LeadID: "no-such-lead",
		Type:   domain.ActionView,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(actions.inserted) != 0 {
		t.Fatal("rejected event must not reach the ledger")
	}
}

// TestRecordAppends checks the happy path end to end, including the
// server-assigned timestamp in the acknowledgement.
func TestRecordAppends(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.Upsert(context.Background(), "lead-1", "203.0.113.5")
	actions := &fakeActionRepo{}
	svc := NewLedgerUseCase(leads, actions)

	offerID := "offer-1"
	pos := 2
	rec, err := svc.Record(context.Background(), port.RecordActionInput{
		LeadID:        "lead-1",
		Type:          domain.ActionDecline,
		OfferID:       &offerID,
		OfferPosition: &pos,
		Metadata:      map[string]any{"sessionId": "session_1_abcdefghi"},
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if rec.ID == "" || rec.Timestamp.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", rec)
	}
	if rec.Type != domain.ActionDecline {
		t.Fatalf("expected %s, got %s", domain.ActionDecline, rec.Type)
	}

	if len(actions.inserted) != 1 {
		t.Fatalf("expected one ledger row, got %d", len(actions.inserted))
	}
	row := actions.inserted[0]
	if row.OfferID == nil || *row.OfferID != offerID {
		t.Fatalf("offer id lost on the way to the ledger: %+v", row)
	}
	if row.OfferPosition == nil || *row.OfferPosition != pos {
		t.Fatalf("offer position lost on the way to the ledger: %+v", row)
	}
}

// TestQueryFiltering checks lead and type filters plus newest-first order.
func TestQueryFiltering(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.Upsert(context.Background(), "lead-1", "203.0.113.5")
	leads.Upsert(context.Background(), "lead-2", "198.51.100.7")
	actions := &fakeActionRepo{}
	svc := NewLedgerUseCase(leads, actions)

	for _, in := range []port.RecordActionInput{
		{LeadID: "lead-1", Type: domain.ActionView},
		{LeadID: "lead-1", Type: domain.ActionDecline},
		{LeadID: "lead-2", Type: domain.ActionView},
	} {
		if _, err := svc.Record(context.Background(), in); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	rows, err := svc.Query(context.Background(), port.ActionFilter{LeadID: "lead-1"})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for lead-1, got %d", len(rows))
	}
	if rows[0].Action.Type != domain.ActionDecline {
		t.Fatalf("expected newest first, got %s", rows[0].Action.Type)
	}

	rows, err = svc.Query(context.Background(), port.ActionFilter{ActionType: domain.ActionView})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 view rows, got %d", len(rows))
	}
}
