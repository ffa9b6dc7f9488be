package httpadapter

import (
	"time"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// publicOffer is the projection visitors see; internal flags and counts
// stay out of it.
type publicOffer struct {
	OfferID      string `json:"offerId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	SavingsText  string `json:"savingsText"`
	AffiliateURL string `json:"affiliateUrl"`
	Position     int    `json:"position"`
}

func toPublicOffer(o domain.Offer) publicOffer {
	return publicOffer{
		OfferID:      o.ID,
		Title:        o.Title,
		Description:  o.Description,
		SavingsText:  o.SavingsText,
		AffiliateURL: o.AffiliateURL,
		Position:     o.Position,
	}
}

// offerDetail is the full offer as returned by admin mutations.
type offerDetail struct {
	publicOffer
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toOfferDetail(o domain.Offer) offerDetail {
	return offerDetail{
		publicOffer: toPublicOffer(o),
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// adminOffer additionally carries the ledger row count.
type adminOffer struct {
	offerDetail
	ActionCount int64 `json:"actionCount"`
}

func toAdminOffer(ows port.OfferWithStats) adminOffer {
	return adminOffer{offerDetail: toOfferDetail(ows.Offer), ActionCount: ows.ActionCount}
}

type actionOfferRef struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type actionResponse struct {
	ActionID      string          `json:"actionId"`
	LeadID        string          `json:"leadId"`
	ActionType    string          `json:"actionType"`
	SessionID     *string         `json:"sessionId"`
	OfferID       *string         `json:"offerId"`
	OfferPosition *int            `json:"offerPosition"`
	Metadata      map[string]any  `json:"metadata"`
	CreatedAt     time.Time       `json:"createdAt"`
	Offer         *actionOfferRef `json:"offer"`
}

func toActionResponse(rec port.ActionRecord) actionResponse {
	resp := actionResponse{
		ActionID:      rec.Action.ID,
		LeadID:        rec.Action.LeadID,
		ActionType:    string(rec.Action.Type),
		SessionID:     rec.Action.SessionID,
		OfferID:       rec.Action.OfferID,
		OfferPosition: rec.Action.OfferPosition,
		Metadata:      rec.Action.Metadata,
		CreatedAt:     rec.Action.CreatedAt,
	}
	if rec.OfferTitle != nil && rec.OfferPosition != nil {
		resp.Offer = &actionOfferRef{Title: *rec.OfferTitle, Position: *rec.OfferPosition}
	}
	return resp
}

type statsTotals struct {
	Leads    int64 `json:"leads"`
	Views    int64 `json:"views"`
	Declines int64 `json:"declines"`
	Submits  int64 `json:"submits"`
}

type statsOfferRow struct {
	OfferID  string `json:"offerId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	Views    int64  `json:"views"`
	Declines int64  `json:"declines"`
	Submits  int64  `json:"submits"`
}

type statsResponse struct {
	Totals statsTotals     `json:"totals"`
	Offers []statsOfferRow `json:"offers"`
}

func toStatsResponse(rep port.StatsReport) statsResponse {
	resp := statsResponse{
		Totals: statsTotals{Leads: rep.Leads, Views: rep.Views, Declines: rep.Declines, Submits: rep.Submits},
		Offers: make([]statsOfferRow, 0, len(rep.Offers)),
	}
	for _, os := range rep.Offers {
		resp.Offers = append(resp.Offers, statsOfferRow{
			OfferID:  os.OfferID,
			Title:    os.Title,
			Position: os.Position,
			Views:    os.Views,
			Declines: os.Declines,
			Submits:  os.Submits,
		})
	}
	return resp
}
