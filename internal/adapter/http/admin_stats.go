package httpadapter

import "net/http"

func (h *Handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Stats.Overview(r.Context())
	if err != nil {
		h.failFrom(w, err, "", "Failed to fetch stats")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"data": toStatsResponse(report)})
}
