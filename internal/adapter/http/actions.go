package httpadapter

import (
	"log/slog"
	"net/http"

	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// handleRecordAction appends one event to the ledger. The timestamp in
// the response is the server-assigned insert time.
func (h *Handler) handleRecordAction(w http.ResponseWriter, r *http.Request) {
	var req recordActionRequest
	if err := h.decode(r, &req); err != nil {
		h.failFrom(w, err, "", "Failed to log action")
		return
	}

	rec, err := h.svc.Ledger.Record(r.Context(), port.RecordActionInput{
		LeadID:        req.LeadID,
		Type:          domain.ActionType(req.ActionType),
		SessionID:     req.SessionID,
		OfferID:       req.OfferID,
		OfferPosition: req.OfferPosition,
		Metadata:      req.Metadata,
	})
	if err != nil {
		h.failFrom(w, err, "Lead not found", "Failed to log action")
		return
	}

	h.logger.Info("action logged",
		slog.String("actionType", string(rec.Type)),
		slog.String("leadId", req.LeadID))
	h.respond(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"actionId":   rec.ID,
			"actionType": rec.Type,
			"timestamp":  rec.Timestamp,
		},
	})
}

// handleQueryActions serves the filtered ledger read, newest first,
// capped at 100 rows.
func (h *Handler) handleQueryActions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.svc.Ledger.Query(r.Context(), port.ActionFilter{
		LeadID:     q.Get("leadId"),
		ActionType: domain.ActionType(q.Get("actionType")),
	})
	if err != nil {
		h.failFrom(w, err, "", "Failed to fetch actions")
		return
	}
	data := make([]actionResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toActionResponse(rec))
	}
	h.respond(w, http.StatusOK, map[string]any{"data": data, "count": len(data)})
}
