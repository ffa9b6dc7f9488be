// Package chain implements the walk through the ordered active offer
// list: show one offer at a time, record what the visitor does, and wrap
// around at the end of the list. The walk is the client side of the
// protocol; the ledger only ever sees the events it emits.
package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"offerchain/internal/core/domain"
)

// State is the phase of a walk.
type State int

const (
	// StateLoading means the walk has not been bound to offers yet.
	StateLoading State = iota
	// StateReady means an offer is on display and input is accepted.
	StateReady
	// StateExhausted is terminal and only reached when the offer list is
	// empty; a non-empty chain cycles forever.
	StateExhausted
)

// Event is one telemetry emission from the walk. Step is the 1-based
// position within the walk at the time of the event.
type Event struct {
	LeadID    string
	SessionID string
	Type      domain.ActionType
	OfferID   string
	Step      int
	Metadata  map[string]any
}

// Emitter delivers walk events to the action ledger. Implementations may
// fail; the walk logs the failure and keeps going.
type Emitter interface {
	Emit(ctx context.Context, ev Event) error
}

// Walk steps a single visitor through the offer chain. It is cooperative:
// one offer is current at a time and Decline/Accept are never called
// concurrently.
type Walk struct {
	emitter   Emitter
	log       *slog.Logger
	leadID    string
	sessionID string
	offers    []domain.Offer
	index     int
	state     State
}

// New returns a walk in the loading state with a fresh session id. The
// session id identifies this walk only and is never persisted; lead
// identity is resolved separately and survives reloads.
func New(emitter Emitter, logger *slog.Logger) *Walk {
	return &Walk{
		emitter:   emitter,
		log:       logger,
		sessionID: NewSessionID(),
		state:     StateLoading,
	}
}

// Start binds the walk to a lead and an offer list. An empty list is
// terminal; otherwise the first offer goes on display and a view event is
// emitted for it.
func (w *Walk) Start(ctx context.Context, leadID string, offers []domain.Offer) {
	w.leadID = leadID
	w.offers = offers
	w.index = 0
	if len(offers) == 0 {
		w.state = StateExhausted
		return
	}
	w.state = StateReady
	w.emit(ctx, domain.ActionView)
}

// State returns the walk's current phase.
func (w *Walk) State() State { return w.state }

// SessionID returns the walk-scoped session identifier.
func (w *Walk) SessionID() string { return w.sessionID }

// Current returns the offer on display and its 1-based step number. Only
// valid in StateReady.
func (w *Walk) Current() (domain.Offer, int) {
	return w.offers[w.index], w.index + 1
}

// Decline records the refusal and moves to the next offer, wrapping at
// the end of the list.
func (w *Walk) Decline(ctx context.Context) {
	if w.state != StateReady {
		return
	}
	w.emit(ctx, domain.ActionDecline)
	w.advance(ctx)
}

// Accept records the submit and returns the affiliate URL to hand the
// visitor to. The walk then advances exactly as a decline does, so the
// chain continues if the visitor comes back.
func (w *Walk) Accept(ctx context.Context) string {
	if w.state != StateReady {
		return ""
	}
	url := w.offers[w.index].AffiliateURL
	w.emit(ctx, domain.ActionSubmit)
	w.advance(ctx)
	return url
}

func (w *Walk) advance(ctx context.Context) {
	w.index = (w.index + 1) % len(w.offers)
	// entering an index always emits a view, including after a wrap
	w.emit(ctx, domain.ActionView)
}

// emit is fire-and-forget: a ledger failure must not stall or reverse the
// advance. Ordering among a lead's events comes from the server-assigned
// timestamps, not from emission order here.
func (w *Walk) emit(ctx context.Context, t domain.ActionType) {
	offer := w.offers[w.index]
	ev := Event{
		LeadID:    w.leadID,
		SessionID: w.sessionID,
		Type:      t,
		OfferID:   offer.ID,
		Step:      w.index + 1,
		Metadata: map[string]any{
			"sessionId": w.sessionID,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err := w.emitter.Emit(ctx, ev); err != nil {
		w.log.Error("failed to record chain event",
			slog.String("actionType", string(t)),
			slog.String("offerId", offer.ID),
			slog.Any("error", err))
	}
}

const sessionAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSessionID mints a walk-scoped identifier in the
// session_<millis>_<rand> form the ledger has always stored.
func NewSessionID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = sessionAlphabet[rand.IntN(len(sessionAlphabet))]
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
