package controller

import (
	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
)

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns (string card fields, validation tags).
// Controllers convert these to domain inputs before calling business logic.
// Card numbers and CVVs live only inside the request scope and are never
// echoed back in any response.

// ValidateCardRequest holds the raw card fields for a validation call.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	HolderName string `json:"holder_name" validate:"required"`
	ExpMonth   int    `json:"exp_month" validate:"required"`
	ExpYear    int    `json:"exp_year" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// TokenizeCardRequest holds the card fields plus an optional vault override.
type TokenizeCardRequest struct {
	CardNumber string  `json:"card_number" validate:"required"`
	HolderName string  `json:"holder_name" validate:"required"`
	ExpMonth   int     `json:"exp_month" validate:"required"`
	ExpYear    int     `json:"exp_year" validate:"required"`
	CVV        string  `json:"cvv" validate:"required"`
	Vault      *string `json:"vault,omitempty"`
}

// UpsertCapabilityRequest holds the capability flags synced from the account
// provider.
type UpsertCapabilityRequest struct {
	ChargesEnabled bool `json:"charges_enabled"`
	PayoutsEnabled bool `json:"payouts_enabled"`
}

// EncodeQRRequest holds the input for encoding a payment QR payload.
type EncodeQRRequest struct {
	Type          string `json:"type" validate:"required,oneof=bank user"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingHint   string `json:"routing_hint,omitempty"`
	UserID        string `json:"user_id,omitempty"`
}

// DecodeQRRequest holds a scanned QR string.
type DecodeQRRequest struct {
	Data string `json:"data" validate:"required"`
}

// --- Response DTOs ---

// CardValidationResponse represents a validation outcome in API responses.
// Only the masked number and the non-reversible fingerprint are exposed.
type CardValidationResponse struct {
	Brand       string `json:"brand"`
	LuhnValid   bool   `json:"luhn_valid"`
	ExpiryValid bool   `json:"expiry_valid"`
	CvvValid    bool   `json:"cvv_valid"`
	MaskedPan   string `json:"masked_pan"`
	Fingerprint string `json:"fingerprint"`
}

// TokenizeCardResponse represents a successful enrollment.
type TokenizeCardResponse struct {
	PaymentMethodID string `json:"payment_method_id"`
	Brand           string `json:"brand"`
	MaskedPan       string `json:"masked_pan"`
}

// ReadinessResponse represents a transfer readiness decision.
type ReadinessResponse struct {
	CanSend bool   `json:"can_send"`
	Reason  string `json:"reason"`
}

// CapabilityResponse represents a directory record in API responses.
type CapabilityResponse struct {
	AccountID      string `json:"account_id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// EncodeQRResponse carries the encoded QR string.
type EncodeQRResponse struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// DecodeQRResponse carries the decoded payload fields. Exactly one of the
// bank and user field groups is populated, per the payload type.
type DecodeQRResponse struct {
	Type                string `json:"type"`
	BankName            string `json:"bank_name,omitempty"`
	MaskedAccountNumber string `json:"masked_account_number,omitempty"`
	RoutingHint         string `json:"routing_hint,omitempty"`
	UserID              string `json:"user_id,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Conversion helpers ---

// FromValidatedCard converts a domain validation outcome to API response.
func FromValidatedCard(vc *card.ValidatedCard) *CardValidationResponse {
	return &CardValidationResponse{
		Brand:       string(vc.Brand),
		LuhnValid:   vc.LuhnValid,
		ExpiryValid: vc.ExpiryValid,
		CvvValid:    vc.CvvValid,
		MaskedPan:   vc.MaskedPAN,
		Fingerprint: string(vc.Fingerprint),
	}
}

// FromDecision converts a readiness decision to API response.
func FromDecision(d transfer.ReadinessDecision) *ReadinessResponse {
	return &ReadinessResponse{
		CanSend: d.CanSend,
		Reason:  string(d.Reason),
	}
}
