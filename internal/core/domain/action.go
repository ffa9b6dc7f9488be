package domain

import "time"

// ActionType enumerates the events the ledger accepts. The values are the
// wire representation and are stored verbatim.
type ActionType string

const (
	ActionView    ActionType = "PATH_VIEW"
	ActionDecline ActionType = "PATH_DECLINE"
	ActionSubmit  ActionType = "PATH_SUBMIT"
)

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	switch t {
	case ActionView, ActionDecline, ActionSubmit:
		return true
	}
	return false
}

// Action is one appended ledger row. Rows are immutable after insert and
// CreatedAt is assigned at insert time, never taken from the client, so
// event ordering cannot be forged. OfferID, SessionID and OfferPosition
// are optional; OfferPosition snapshots the offer's position at event
// time and survives later reorders.
type Action struct {
	ID            string
	LeadID        string
	OfferID       *string
	Type          ActionType
	SessionID     *string
	OfferPosition *int
	Metadata      map[string]any
	CreatedAt     time.Time
}
