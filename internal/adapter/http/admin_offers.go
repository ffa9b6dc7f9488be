package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"offerchain/internal/core/port"
)

// handleAdminListOffers returns the full catalog, active or not, with
// per-offer action counts.
func (h *Handler) handleAdminListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.Catalog.ListAll(r.Context())
	if err != nil {
		h.failFrom(w, err, "", "Failed to fetch offers")
		return
	}
	data := make([]adminOffer, 0, len(offers))
	for _, o := range offers {
		data = append(data, toAdminOffer(o))
	}
	h.respond(w, http.StatusOK, map[string]any{"data": data, "count": len(data)})
}

// handleAdminGetOffer returns a single offer with its action count.
func (h *Handler) handleAdminGetOffer(w http.ResponseWriter, r *http.Request) {
	ows, err := h.svc.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.failFrom(w, err, "Offer not found", "Failed to fetch offer")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"data": toAdminOffer(ows)})
}

// handleAdminCreateOffer creates an offer; an omitted position appends it
// at the end of the chain.
func (h *Handler) handleAdminCreateOffer(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if err := h.decode(r, &req); err != nil {
		h.failFrom(w, err, "", "Failed to create offer")
		return
	}
	offer, err := h.svc.Catalog.Create(r.Context(), port.CreateOfferInput{
		Title:        req.Title,
		Description:  req.Description,
		SavingsText:  req.SavingsText,
		AffiliateURL: req.AffiliateURL,
		Position:     req.Position,
	})
	if err != nil {
		h.failFrom(w, err, "", "Failed to create offer")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"data": toOfferDetail(offer)})
}

// handleAdminUpdateOffer applies a sparse update: only fields present in
// the request change.
func (h *Handler) handleAdminUpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req updateOfferRequest
	if err := h.decode(r, &req); err != nil {
		h.failFrom(w, err, "", "Failed to update offer")
		return
	}
	offer, err := h.svc.Catalog.Update(r.Context(), chi.URLParam(r, "id"), port.OfferUpdate{
		Title:        req.Title,
		Description:  req.Description,
		SavingsText:  req.SavingsText,
		AffiliateURL: req.AffiliateURL,
		Position:     req.Position,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.failFrom(w, err, "Offer not found", "Failed to update offer")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"data": toOfferDetail(offer)})
}

// handleAdminDeleteOffer removes the offer and its ledger history.
func (h *Handler) handleAdminDeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.failFrom(w, err, "Offer not found", "Failed to delete offer")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"message": "Offer deleted successfully"})
}

// handleAdminReorderOffers atomically renumbers the whole catalog to
// match the submitted id order.
func (h *Handler) handleAdminReorderOffers(w http.ResponseWriter, r *http.Request) {
	var req reorderOffersRequest
	if err := h.decode(r, &req); err != nil {
		h.failFrom(w, err, "", "Failed to reorder offers")
		return
	}
	offers, err := h.svc.Catalog.Reorder(r.Context(), req.OfferIDs)
	if err != nil {
		h.failFrom(w, err, "", "Failed to reorder offers")
		return
	}
	data := make([]offerDetail, 0, len(offers))
	for _, o := range offers {
		data = append(data, toOfferDetail(o))
	}
	h.respond(w, http.StatusOK, map[string]any{"data": data, "message": "Offers reordered successfully"})
}
