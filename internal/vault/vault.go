package vault

import (
	"context"
)

// TokenizeResult is the vault's answer to an enrollment request.
type TokenizeResult struct {
	PaymentMethodID string
	Status          string // "success", "failed"
	ErrorMessage    string
}

// Tokenizer is the external tokenization vault port. It only ever sees the
// sanitized card reference, never a raw PAN or CVV.
type Tokenizer interface {
	// Name returns the vault name.
	Name() string
	// Tokenize exchanges a sanitized card reference for an opaque
	// payment-method identifier.
	Tokenize(ctx context.Context, req TokenizeRequest) (*TokenizeResult, error)
}

// TokenizeRequest carries the sanitized card reference handed to the vault.
type TokenizeRequest struct {
	Brand       string
	MaskedPAN   string
	Fingerprint string
	ExpMonth    int
	ExpYear     int
}
