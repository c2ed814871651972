package controller

import (
	"net/http"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
	"github.com/KDR9MGR/digital-payments-core/internal/infrastructure/observability"
	"github.com/KDR9MGR/digital-payments-core/internal/repository/postgres"
	"github.com/KDR9MGR/digital-payments-core/internal/service"
	"github.com/go-chi/chi/v5"
)

type TransferController struct {
	gate    *service.ReadinessGate
	capRepo *postgres.CapabilityRepository
	metrics *observability.Metrics
}

func NewTransferController(gate *service.ReadinessGate, capRepo *postgres.CapabilityRepository, metrics *observability.Metrics) *TransferController {
	return &TransferController{
		gate:    gate,
		capRepo: capRepo,
		metrics: metrics,
	}
}

func (h *TransferController) Readiness(w http.ResponseWriter, r *http.Request) {
	senderID := r.URL.Query().Get("sender_id")
	recipientID := r.URL.Query().Get("recipient_id")

	start := time.Now()
	decision := h.gate.Check(r.Context(), senderID, recipientID)

	reason := string(decision.Reason)
	h.metrics.ReadinessChecksTotal.WithLabelValues(reason).Inc()
	h.metrics.ReadinessCheckDuration.WithLabelValues(reason).Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, FromDecision(decision))
}

func (h *TransferController) UpsertCapability(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing account id", Code: "invalid_id"})
		return
	}

	var req UpsertCapabilityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	caps := transfer.AccountCapability{
		ChargesEnabled: req.ChargesEnabled,
		PayoutsEnabled: req.PayoutsEnabled,
	}
	if err := h.capRepo.Upsert(r.Context(), accountID, caps); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CapabilityResponse{
		AccountID:      accountID,
		ChargesEnabled: caps.ChargesEnabled,
		PayoutsEnabled: caps.PayoutsEnabled,
	})
}
