package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/KDR9MGR/digital-payments-core/internal/infrastructure/observability"
	"github.com/KDR9MGR/digital-payments-core/internal/service"
)

// FingerprintDirectory is the read-write view of the enrolled-card
// fingerprint set. Validation only reads it; enrollment appends to it.
type FingerprintDirectory interface {
	card.FingerprintSet
	Add(ctx context.Context, fp card.Fingerprint) error
}

type CardController struct {
	cardService  *service.CardService
	fingerprints FingerprintDirectory
	defaultVault string
	metrics      *observability.Metrics
}

func NewCardController(cardService *service.CardService, fingerprints FingerprintDirectory, defaultVault string, metrics *observability.Metrics) *CardController {
	return &CardController{
		cardService:  cardService,
		fingerprints: fingerprints,
		defaultVault: defaultVault,
		metrics:      metrics,
	}
}

func (h *CardController) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateCardRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vc, err := h.cardService.ValidateAndTokenize(r.Context(), card.Input{
		PAN:        req.CardNumber,
		HolderName: req.HolderName,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		CVV:        req.CVV,
	}, h.fingerprints)
	if err != nil {
		h.metrics.CardValidationsTotal.WithLabelValues("rejected").Inc()
		h.metrics.CardValidationErrors.WithLabelValues(errorKind(err)).Inc()
		writeError(w, err)
		return
	}

	h.metrics.CardValidationsTotal.WithLabelValues("accepted").Inc()
	h.metrics.BrandDetectionsTotal.WithLabelValues(string(vc.Brand)).Inc()

	writeJSON(w, http.StatusOK, FromValidatedCard(vc))
}

func (h *CardController) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req TokenizeCardRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vc, err := h.cardService.ValidateAndTokenize(r.Context(), card.Input{
		PAN:        req.CardNumber,
		HolderName: req.HolderName,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		CVV:        req.CVV,
	}, h.fingerprints)
	if err != nil {
		h.metrics.CardValidationsTotal.WithLabelValues("rejected").Inc()
		h.metrics.CardValidationErrors.WithLabelValues(errorKind(err)).Inc()
		writeError(w, err)
		return
	}
	h.metrics.CardValidationsTotal.WithLabelValues("accepted").Inc()
	h.metrics.BrandDetectionsTotal.WithLabelValues(string(vc.Brand)).Inc()

	vaultName := h.defaultVault
	if req.Vault != nil && *req.Vault != "" {
		vaultName = *req.Vault
	}

	start := time.Now()
	pmID, err := h.cardService.EnrollCard(r.Context(), vaultName, vc, req.ExpMonth, req.ExpYear)
	h.metrics.TokenizationDuration.WithLabelValues(vaultName).Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.TokenizationsTotal.WithLabelValues(vaultName, "failed").Inc()
		writeError(w, err)
		return
	}
	h.metrics.TokenizationsTotal.WithLabelValues(vaultName, "success").Inc()

	// The card is now on file, so the next attempt with the same number
	// must be reported as a duplicate.
	if err := h.fingerprints.Add(r.Context(), vc.Fingerprint); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, TokenizeCardResponse{
		PaymentMethodID: pmID,
		Brand:           string(vc.Brand),
		MaskedPan:       vc.MaskedPAN,
	})
}
