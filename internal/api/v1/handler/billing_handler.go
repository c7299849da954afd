package handler

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// BillingHandler acknowledges payment-provider webhooks. Payloads are
// accepted as opaque bytes; signature verification and the entitlement
// update on a verified payment event live with the billing integration.
type BillingHandler struct {
	logger zerolog.Logger
}

func NewBillingHandler(logger zerolog.Logger) *BillingHandler {
	return &BillingHandler{logger: logger}
}

// RegisterRoutes mounts the webhook endpoint. It is unauthenticated; the
// provider signs its payloads instead of carrying a session.
func (h *BillingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/billing/webhook", http.HandlerFunc(h.webhook))
}

func (h *BillingHandler) webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read payload", http.StatusBadRequest)
		return
	}

	h.logger.Info().Int("payload_bytes", len(payload)).Msg("Billing webhook received")
	w.WriteHeader(http.StatusOK)
}
