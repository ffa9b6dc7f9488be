package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"offerchain/internal/core/domain"
)

// respond writes the success envelope. body carries the payload fields
// (data, count, message); success is always set here.
func (h *Handler) respond(w http.ResponseWriter, status int, body map[string]any) {
	body["success"] = true
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail writes the failure envelope with the given message.
func (h *Handler) fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// failFrom maps the error taxonomy onto the failure envelope. Validation
// reasons go to the caller verbatim; everything unclassified is logged
// with its cause and reported with the generic message only, so storage
// detail never leaks.
func (h *Handler) failFrom(w http.ResponseWriter, err error, notFoundMsg, genericMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.fail(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, domain.ErrNotFound):
		h.fail(w, http.StatusNotFound, notFoundMsg)
	default:
		h.logger.Error(genericMsg, slog.Any("error", err))
		h.fail(w, http.StatusInternalServerError, genericMsg)
	}
}
