package httpadapter

import (
	"log/slog"
	"net/http"

	"offerchain/internal/identity"
)

// handleResolveLead resolves or creates the lead for the caller's
// fingerprint. The response carries the lead id and whether this request
// created it.
func (h *Handler) handleResolveLead(w http.ResponseWriter, r *http.Request) {
	fingerprint := identity.ClientFingerprint(r, h.env)
	lead, created, err := h.svc.Identity.ResolveOrCreate(r.Context(), fingerprint)
	if err != nil {
		h.failFrom(w, err, "Lead not found", "Failed to process lead")
		return
	}
	if created {
		h.logger.Info("new lead created",
			slog.String("leadId", lead.ID),
			slog.String("ip", lead.IPAddress))
	}
	h.respond(w, http.StatusOK, map[string]any{
		"data": map[string]any{"leadId": lead.ID, "isNewLead": created},
	})
}

// handleLookupLead is the read-only variant: 404 when no lead matches the
// fingerprint.
func (h *Handler) handleLookupLead(w http.ResponseWriter, r *http.Request) {
	fingerprint := identity.ClientFingerprint(r, h.env)
	lead, err := h.svc.Identity.Lookup(r.Context(), fingerprint)
	if err != nil {
		h.failFrom(w, err, "Lead not found", "Failed to fetch lead")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"data": map[string]any{"leadId": lead.ID},
	})
}
