package card

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Input carries the raw card fields for a single validation call. It is
// transient: it exists only for the duration of the call and must never be
// persisted or logged.
type Input struct {
	PAN        string
	HolderName string
	ExpMonth   int
	ExpYear    int
	CVV        string
}

// Fingerprint is a stable, non-reversible digest of a normalized PAN, used
// only for duplicate-detection comparison.
type Fingerprint string

// FingerprintSet is the caller-owned set of fingerprints for cards already
// on file. The core only reads it; callers add fingerprints themselves after
// a successful tokenization.
type FingerprintSet interface {
	Contains(ctx context.Context, fp Fingerprint) (bool, error)
}

// ValidatedCard is the sanitized outcome of a validation call. It carries
// the detected brand, validity flags, a display mask, and the duplicate
// fingerprint. The raw PAN never crosses this boundary.
type ValidatedCard struct {
	Brand       Brand
	LuhnValid   bool
	ExpiryValid bool
	CvvValid    bool
	MaskedPAN   string
	Fingerprint Fingerprint
}

// Acceptable reports whether every validity flag passed. Duplicate status is
// judged separately against the caller's fingerprint set.
func (c *ValidatedCard) Acceptable() bool {
	return c.LuhnValid && c.Brand != BrandUnknown && c.ExpiryValid && c.CvvValid
}

// NormalizePAN strips the separators users type into card numbers.
func NormalizePAN(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' || raw[i] == '-' {
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// MaskPAN keeps only the last four digits for display.
func MaskPAN(digits string) string {
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return "**** " + digits[len(digits)-4:]
}

// ComputeFingerprint derives the duplicate fingerprint as a keyed
// HMAC-SHA256 over the normalized PAN. The key keeps the digest
// non-reversible even against brute-forced PAN ranges.
func ComputeFingerprint(normalizedPAN string, key []byte) Fingerprint {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(normalizedPAN))
	return Fingerprint(hex.EncodeToString(mac.Sum(nil)))
}
