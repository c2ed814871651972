package controller

import (
	"net/http"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
	"github.com/KDR9MGR/digital-payments-core/internal/domain/qr"
	"github.com/KDR9MGR/digital-payments-core/internal/infrastructure/observability"
)

type QRController struct {
	metrics *observability.Metrics
}

func NewQRController(metrics *observability.Metrics) *QRController {
	return &QRController{metrics: metrics}
}

func (h *QRController) Encode(w http.ResponseWriter, r *http.Request) {
	var req EncodeQRRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var payload qr.Payload
	switch qr.PayloadType(req.Type) {
	case qr.TypeBankAccount:
		if req.BankName == "" {
			writeError(w, domainErrors.NewValidationError("bank_name", "required for bank payloads"))
			return
		}
		if req.AccountNumber == "" {
			writeError(w, domainErrors.NewValidationError("account_number", "required for bank payloads"))
			return
		}
		payload = qr.NewBankAccountPayload(req.BankName, req.AccountNumber, req.RoutingHint)
	case qr.TypeUser:
		if req.UserID == "" {
			writeError(w, domainErrors.NewValidationError("user_id", "required for user payloads"))
			return
		}
		payload = qr.UserPayload{UserID: req.UserID}
	}

	h.metrics.QREncodesTotal.WithLabelValues(req.Type).Inc()

	writeJSON(w, http.StatusOK, EncodeQRResponse{
		Type: req.Type,
		Data: qr.Encode(payload),
	})
}

func (h *QRController) Decode(w http.ResponseWriter, r *http.Request) {
	var req DecodeQRRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payload, err := qr.Decode(req.Data)
	if err != nil {
		h.metrics.QRDecodeErrors.WithLabelValues(errorKind(err)).Inc()
		writeError(w, err)
		return
	}

	resp := DecodeQRResponse{Type: string(payload.Type())}
	switch p := payload.(type) {
	case qr.BankAccountPayload:
		resp.BankName = p.BankName
		resp.MaskedAccountNumber = p.MaskedAccountNumber
		resp.RoutingHint = p.RoutingHint
	case qr.UserPayload:
		resp.UserID = p.UserID
	}

	h.metrics.QRDecodesTotal.WithLabelValues(resp.Type).Inc()

	writeJSON(w, http.StatusOK, resp)
}
