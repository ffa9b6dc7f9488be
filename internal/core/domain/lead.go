package domain

import "time"

// Lead is a visitor identity resolved from a client fingerprint. Leads are
// created lazily on first contact and never updated afterwards.
type Lead struct {
	ID        string
	IPAddress string
	CreatedAt time.Time
}
