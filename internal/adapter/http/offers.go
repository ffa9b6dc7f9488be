package httpadapter

import "net/http"

// handleListOffers serves the public offer chain: active offers only,
// ascending by position, projected to public fields.
func (h *Handler) handleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.Catalog.ListActive(r.Context())
	if err != nil {
		h.failFrom(w, err, "", "Failed to fetch offers")
		return
	}
	data := make([]publicOffer, 0, len(offers))
	for _, o := range offers {
		data = append(data, toPublicOffer(o))
	}
	h.respond(w, http.StatusOK, map[string]any{"data": data, "count": len(data)})
}
