package domain

import "time"

// Offer is one step of the affiliate chain shown to visitors. Position
// drives display order; ties are broken by creation order. Positions are
// not globally unique until an admin reorder renumbers the whole list.
type Offer struct {
	ID           string
	Title        string
	Description  string
	SavingsText  string
	AffiliateURL string
	Position     int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
